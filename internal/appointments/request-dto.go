package appointments

import "github.com/google/uuid"

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" binding:"required"`
	StartAt   string    `json:"start_at" binding:"required"` // RFC 3339
	EndAt     string    `json:"end_at" binding:"required"`
	Reason    string    `json:"reason" binding:"max=500"`
}

// UpdateAppointmentRequest changes the status of an existing appointment.
type UpdateAppointmentRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Status Status    `json:"status" binding:"required,oneof=scheduled cancelled completed"`
}

type ListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=scheduled cancelled completed"`
}
