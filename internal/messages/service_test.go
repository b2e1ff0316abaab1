package messages

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mediflow/internal/users"
)

type memoryRepo struct {
	messages []Message
}

func (m *memoryRepo) Create(_ context.Context, message *Message) error {
	message.ID = uuid.New()
	m.messages = append(m.messages, *message)
	return nil
}

func (m *memoryRepo) ListByThread(_ context.Context, threadID uuid.UUID) ([]Message, error) {
	var list []Message
	for _, msg := range m.messages {
		if msg.ThreadID == threadID {
			list = append(list, msg)
		}
	}
	return list, nil
}

func (m *memoryRepo) ListByParticipant(_ context.Context, userID uuid.UUID) ([]Message, error) {
	var list []Message
	for _, msg := range m.messages {
		if msg.FromID == userID || msg.ToID == userID {
			list = append(list, msg)
		}
	}
	return list, nil
}

type stubUserRepo struct {
	doctors []users.User
}

func (s *stubUserRepo) Create(context.Context, *users.User) error { return nil }
func (s *stubUserRepo) GetByID(context.Context, uuid.UUID) (*users.User, error) {
	return nil, users.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmail(context.Context, string) (*users.User, error) {
	return nil, users.ErrUserNotFound
}
func (s *stubUserRepo) EmailExists(context.Context, string) (bool, error) { return false, nil }
func (s *stubUserRepo) ListByHospital(context.Context, uuid.UUID) ([]users.User, error) {
	return nil, nil
}
func (s *stubUserRepo) ListByRole(_ context.Context, _ uuid.UUID, role users.Role) ([]users.User, error) {
	if role == users.RoleDoctor {
		return s.doctors, nil
	}
	return nil, nil
}
func (s *stubUserRepo) CountByHospital(context.Context, uuid.UUID) (int64, error) { return 0, nil }

// Naming a sender other than the verified session is rejected outright.
func TestSendRejectsSenderSpoof(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, &stubUserRepo{})

	caller := uuid.New()
	impostor := uuid.New()
	_, err := svc.Send(context.Background(), caller, uuid.New(), SendMessageRequest{
		ToID:   uuid.New(),
		Body:   "hello",
		FromID: &impostor,
	})
	require.ErrorIs(t, err, ErrSenderSpoof)
	require.Empty(t, repo.messages)
}

// A matching from_id, or none at all, sends as the session user.
func TestSendUsesSessionIdentity(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, &stubUserRepo{})

	caller := uuid.New()
	recipient := uuid.New()

	sent, err := svc.Send(context.Background(), caller, uuid.New(), SendMessageRequest{
		ToID: recipient,
		Body: "no explicit sender",
	})
	require.NoError(t, err)
	require.Equal(t, caller, sent.FromID)
	require.NotEqual(t, uuid.Nil, sent.ThreadID)

	sent, err = svc.Send(context.Background(), caller, uuid.New(), SendMessageRequest{
		ToID:   recipient,
		Body:   "explicit matching sender",
		FromID: &caller,
	})
	require.NoError(t, err)
	require.Equal(t, caller, sent.FromID)
}

// A reply with a thread id lands in that thread.
func TestSendReplyKeepsThread(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, &stubUserRepo{})

	alice := uuid.New()
	bob := uuid.New()
	hospital := uuid.New()

	first, err := svc.Send(context.Background(), alice, hospital, SendMessageRequest{
		ToID: bob,
		Body: "first",
	})
	require.NoError(t, err)

	reply, err := svc.Send(context.Background(), bob, hospital, SendMessageRequest{
		ToID:     alice,
		Body:     "reply",
		ThreadID: &first.ThreadID,
	})
	require.NoError(t, err)
	require.Equal(t, first.ThreadID, reply.ThreadID)

	thread, err := svc.List(context.Background(), alice, ListQuery{ThreadID: first.ThreadID.String()})
	require.NoError(t, err)
	require.Len(t, thread, 2)
}

// Non-participants reading a thread get an empty list, same as a thread that
// does not exist.
func TestListThreadHiddenFromOutsiders(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, &stubUserRepo{})

	alice := uuid.New()
	bob := uuid.New()
	eve := uuid.New()

	first, err := svc.Send(context.Background(), alice, uuid.New(), SendMessageRequest{
		ToID: bob,
		Body: "private",
	})
	require.NoError(t, err)

	thread, err := svc.List(context.Background(), eve, ListQuery{ThreadID: first.ThreadID.String()})
	require.NoError(t, err)
	require.Empty(t, thread)
}

func TestListDoctors(t *testing.T) {
	doctorID := uuid.New()
	userRepo := &stubUserRepo{doctors: []users.User{
		{ID: doctorID, Email: "doctor@demo.local", Role: users.RoleDoctor},
	}}
	svc := NewService(&memoryRepo{}, userRepo)

	doctors, err := svc.ListDoctors(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	require.Equal(t, doctorID, doctors[0].ID)
	require.Equal(t, "doctor@demo.local", doctors[0].Email)
}
