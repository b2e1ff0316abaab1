package hospitals

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is the tenant: every user, patient and alert belongs to exactly
// one and all data access is scoped to it through the token claims.
type Hospital struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null;size:50"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Config    string    `json:"config" gorm:"type:text"` // JSON blob: timezone, enabled features
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// VerifyRequest is the public hospital-code lookup payload.
type VerifyRequest struct {
	Code string `json:"code" binding:"required,min=1"`
}

// VerifyResponse reports whether a hospital code exists; it leaks nothing
// beyond the public name.
type VerifyResponse struct {
	Valid        bool    `json:"valid"`
	HospitalID   *string `json:"hospital_id"`
	HospitalName *string `json:"hospital_name"`
}
