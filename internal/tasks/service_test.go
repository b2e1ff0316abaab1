package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	byID map[uuid.UUID]*Task
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[uuid.UUID]*Task)}
}

func (m *memoryRepo) Create(_ context.Context, task *Task) error {
	task.ID = uuid.New()
	m.byID[task.ID] = task
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Task, error) {
	task, ok := m.byID[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (m *memoryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) (*Task, error) {
	task, ok := m.byID[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	task.Status = status
	return task, nil
}

func (m *memoryRepo) ListByAssignee(_ context.Context, assigneeID uuid.UUID, status Status) ([]Task, error) {
	var list []Task
	for _, task := range m.byID {
		if task.AssigneeID != assigneeID {
			continue
		}
		if status != "" && task.Status != status {
			continue
		}
		list = append(list, *task)
	}
	return list, nil
}

func TestMutateCreatesTask(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	assignee := uuid.New()
	due := time.Now().Add(4 * time.Hour).UTC().Format(time.RFC3339)
	task, err := svc.Mutate(context.Background(), assignee, uuid.New(), MutateTaskRequest{
		Title: "Call pharmacy",
		DueAt: due,
	})
	require.NoError(t, err)
	require.Equal(t, StatusTodo, task.Status)
	require.Equal(t, assignee, task.AssigneeID)
	require.NotNil(t, task.DueAt)
}

func TestMutateCreateRequiresTitle(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Mutate(context.Background(), uuid.New(), uuid.New(), MutateTaskRequest{})
	require.Error(t, err)
}

func TestMutateActions(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	assignee := uuid.New()

	task, err := svc.Mutate(context.Background(), assignee, uuid.New(), MutateTaskRequest{Title: "Chart review"})
	require.NoError(t, err)

	moved, err := svc.Mutate(context.Background(), assignee, uuid.New(), MutateTaskRequest{
		Action: ActionInProgress,
		ID:     &task.ID,
	})
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, moved.Status)

	done, err := svc.Mutate(context.Background(), assignee, uuid.New(), MutateTaskRequest{
		Action: ActionComplete,
		ID:     &task.ID,
	})
	require.NoError(t, err)
	require.Equal(t, StatusDone, done.Status)
}

// Moving someone else's task is refused even though the route is shared by
// all staff roles.
func TestMutateRejectsForeignTask(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	owner := uuid.New()
	task, err := svc.Mutate(context.Background(), owner, uuid.New(), MutateTaskRequest{Title: "Mine"})
	require.NoError(t, err)

	_, err = svc.Mutate(context.Background(), uuid.New(), uuid.New(), MutateTaskRequest{
		Action: ActionComplete,
		ID:     &task.ID,
	})
	require.ErrorIs(t, err, ErrNotYourTask)
	require.Equal(t, StatusTodo, repo.byID[task.ID].Status)
}

func TestMutateActionRequiresID(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Mutate(context.Background(), uuid.New(), uuid.New(), MutateTaskRequest{
		Action: ActionComplete,
	})
	require.Error(t, err)
}

func TestListFiltersByStatus(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	assignee := uuid.New()

	first, err := svc.Mutate(context.Background(), assignee, uuid.New(), MutateTaskRequest{Title: "One"})
	require.NoError(t, err)
	_, err = svc.Mutate(context.Background(), assignee, uuid.New(), MutateTaskRequest{Title: "Two"})
	require.NoError(t, err)

	_, err = svc.Mutate(context.Background(), assignee, uuid.New(), MutateTaskRequest{
		Action: ActionComplete,
		ID:     &first.ID,
	})
	require.NoError(t, err)

	todo, err := svc.List(context.Background(), assignee, StatusTodo)
	require.NoError(t, err)
	require.Len(t, todo, 1)

	all, err := svc.List(context.Background(), assignee, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}
