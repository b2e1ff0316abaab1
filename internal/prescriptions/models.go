package prescriptions

import (
	"time"

	"github.com/google/uuid"
)

// Prescription records what a doctor prescribed. Payload is a JSON blob
// (medication, dosage, schedule) kept opaque to the server.
type Prescription struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	HospitalID uuid.UUID `json:"hospital_id" gorm:"type:uuid;not null;index"`
	PatientID  uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	DoctorID   uuid.UUID `json:"doctor_id" gorm:"type:uuid;not null;index"`
	Payload    string    `json:"payload" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

type CreatePrescriptionRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	Payload   string    `json:"payload" binding:"required"`
}
