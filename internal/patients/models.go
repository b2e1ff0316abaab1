package patients

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a person treated by the hospital. It exists independently of a
// login: front desk can register walk-ins who never create an account, and a
// PATIENT user links to exactly one of these records.
type Patient struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	HospitalID  uuid.UUID `json:"hospital_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	DOB         time.Time `json:"dob"`
	ContactInfo string    `json:"contact_info" gorm:"type:text"` // JSON blob: phone, address, emergency contact
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
