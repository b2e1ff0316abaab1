package appointments

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type Appointment struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	HospitalID uuid.UUID `json:"hospital_id" gorm:"type:uuid;not null;index"`
	PatientID  uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	DoctorID   uuid.UUID `json:"doctor_id" gorm:"type:uuid;not null;index"`
	StartAt    time.Time `json:"start_at" gorm:"not null;index"`
	EndAt      time.Time `json:"end_at" gorm:"not null"`
	Reason     string    `json:"reason" gorm:"size:500"`
	Status     Status    `json:"status" gorm:"not null;default:'scheduled'"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
