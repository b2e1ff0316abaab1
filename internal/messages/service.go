package messages

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mediflow/internal/users"
)

// ErrSenderSpoof is returned when the payload names a sender other than the
// verified session. There is no legitimate reason to send as someone else.
var ErrSenderSpoof = errors.New("from_id does not match the authenticated user")

type Service interface {
	List(ctx context.Context, callerID uuid.UUID, query ListQuery) ([]Message, error)
	Send(ctx context.Context, callerID, hospitalID uuid.UUID, req SendMessageRequest) (*Message, error)
	ListDoctors(ctx context.Context, hospitalID uuid.UUID) ([]DoctorSummary, error)
}

type service struct {
	repo     Repository
	userRepo users.Repository
}

func NewService(repo Repository, userRepo users.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

// List returns a single thread when thread_id is given, otherwise everything
// the caller participates in. Thread access is participant-checked so a valid
// session cannot read other people's conversations by guessing thread ids.
func (s *service) List(ctx context.Context, callerID uuid.UUID, query ListQuery) ([]Message, error) {
	if query.ThreadID == "" {
		return s.repo.ListByParticipant(ctx, callerID)
	}

	threadID, err := uuid.Parse(query.ThreadID)
	if err != nil {
		return nil, errors.New("thread_id must be a UUID")
	}
	thread, err := s.repo.ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	for _, m := range thread {
		if m.FromID == callerID || m.ToID == callerID {
			return thread, nil
		}
	}
	// Not a participant: indistinguishable from an empty thread.
	return []Message{}, nil
}

func (s *service) Send(ctx context.Context, callerID, hospitalID uuid.UUID, req SendMessageRequest) (*Message, error) {
	if req.FromID != nil && *req.FromID != callerID {
		return nil, ErrSenderSpoof
	}

	threadID := uuid.New()
	if req.ThreadID != nil {
		threadID = *req.ThreadID
	}

	message := &Message{
		HospitalID: hospitalID,
		ThreadID:   threadID,
		FromID:     callerID,
		ToID:       req.ToID,
		Body:       req.Body,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListDoctors returns the hospital's doctors for the patient recipient picker.
func (s *service) ListDoctors(ctx context.Context, hospitalID uuid.UUID) ([]DoctorSummary, error) {
	doctors, err := s.userRepo.ListByRole(ctx, hospitalID, users.RoleDoctor)
	if err != nil {
		return nil, err
	}

	summaries := make([]DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		summaries = append(summaries, DoctorSummary{ID: d.ID, Email: d.Email})
	}
	return summaries, nil
}
