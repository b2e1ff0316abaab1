package messages

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single entry in a conversation between two users of the same
// hospital. Messages are grouped into threads; a reply carries the thread id
// of the message it answers.
type Message struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	HospitalID uuid.UUID `json:"hospital_id" gorm:"type:uuid;not null;index"`
	ThreadID   uuid.UUID `json:"thread_id" gorm:"type:uuid;not null;index"`
	FromID     uuid.UUID `json:"from_id" gorm:"type:uuid;not null;index"`
	ToID       uuid.UUID `json:"to_id" gorm:"type:uuid;not null;index"`
	Body       string    `json:"body" gorm:"not null;type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

type SendMessageRequest struct {
	ToID     uuid.UUID  `json:"to_id" binding:"required"`
	Body     string     `json:"body" binding:"required,min=1,max=5000"`
	ThreadID *uuid.UUID `json:"thread_id"`
	// FromID is accepted for client convenience but must match the verified
	// session; a mismatch is rejected outright.
	FromID *uuid.UUID `json:"from_id"`
}

type ListQuery struct {
	ThreadID string `form:"thread_id" binding:"omitempty,uuid"`
}

// DoctorSummary is what patients see when choosing a messaging recipient.
type DoctorSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
