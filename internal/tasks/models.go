package tasks

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a personal work item for staff. Tasks are assigned to a user, not
// shared across the hospital.
type Task struct {
	ID         uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	HospitalID uuid.UUID  `json:"hospital_id" gorm:"type:uuid;not null;index"`
	AssigneeID uuid.UUID  `json:"assignee_id" gorm:"type:uuid;not null;index"`
	Title      string     `json:"title" gorm:"not null;size:255"`
	Status     Status     `json:"status" gorm:"not null;default:'todo'"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
