package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotYourTask means the task exists but is assigned to someone else. The
// write endpoint only ever operates on the caller's own tasks.
var ErrNotYourTask = errors.New("task is assigned to another user")

type Service interface {
	List(ctx context.Context, assigneeID uuid.UUID, status Status) ([]Task, error)
	Mutate(ctx context.Context, assigneeID, hospitalID uuid.UUID, req MutateTaskRequest) (*Task, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, assigneeID uuid.UUID, status Status) ([]Task, error) {
	return s.repo.ListByAssignee(ctx, assigneeID, status)
}

// Mutate dispatches the combined write endpoint: an action moves an existing
// task, no action creates a new one.
func (s *service) Mutate(ctx context.Context, assigneeID, hospitalID uuid.UUID, req MutateTaskRequest) (*Task, error) {
	if req.Action != "" {
		return s.applyAction(ctx, assigneeID, req)
	}
	return s.create(ctx, assigneeID, hospitalID, req)
}

func (s *service) applyAction(ctx context.Context, assigneeID uuid.UUID, req MutateTaskRequest) (*Task, error) {
	if req.ID == nil {
		return nil, errors.New("id is required with an action")
	}

	task, err := s.repo.GetByID(ctx, *req.ID)
	if err != nil {
		return nil, err
	}
	if task.AssigneeID != assigneeID {
		return nil, ErrNotYourTask
	}

	status := StatusInProgress
	if req.Action == ActionComplete {
		status = StatusDone
	}
	return s.repo.UpdateStatus(ctx, *req.ID, status)
}

func (s *service) create(ctx context.Context, assigneeID, hospitalID uuid.UUID, req MutateTaskRequest) (*Task, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	var dueAt *time.Time
	if req.DueAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueAt)
		if err != nil {
			return nil, errors.New("due_at must be an RFC 3339 timestamp")
		}
		dueAt = &parsed
	}

	task := &Task{
		HospitalID: hospitalID,
		AssigneeID: assigneeID,
		Title:      req.Title,
		Status:     StatusTodo,
		DueAt:      dueAt,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
