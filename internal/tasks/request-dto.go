package tasks

import "github.com/google/uuid"

// Actions accepted by the write endpoint when it updates instead of creates.
const (
	ActionComplete   = "complete"
	ActionInProgress = "in_progress"
)

// MutateTaskRequest is the single write payload: with Action+ID set it moves
// an existing task, otherwise Title is required and a new task is created.
type MutateTaskRequest struct {
	Action string     `json:"action" binding:"omitempty,oneof=complete in_progress"`
	ID     *uuid.UUID `json:"id"`
	Title  string     `json:"title" binding:"omitempty,min=1,max=255"`
	DueAt  string     `json:"due_at"` // RFC 3339, optional
}

type ListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=todo in_progress done"`
}
