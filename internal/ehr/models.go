package ehr

import (
	"time"

	"github.com/google/uuid"
)

// Record is one entry in a patient's electronic health record: a visit note,
// a lab result, a diagnosis. Payload is schemaless JSON owned by the
// clinical frontend.
type Record struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	HospitalID uuid.UUID `json:"hospital_id" gorm:"type:uuid;not null;index"`
	PatientID  uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `json:"author_id" gorm:"type:uuid;not null"`
	Type       string    `json:"type" gorm:"not null;size:100"` // visit_note, lab_result, diagnosis
	Payload    string    `json:"payload" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Record) TableName() string {
	return "ehr_records"
}

type CreateRecordRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	Type      string    `json:"type" binding:"required,min=1,max=100"`
	Payload   string    `json:"payload" binding:"required"`
}
