package users

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Authorization decisions are made
// against this enumeration only, never against free-form strings.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDoctor    Role = "DOCTOR"
	RoleFrontDesk Role = "FRONT_DESK"
	RolePatient   Role = "PATIENT"
)

// AllRoles lists every valid role, in a stable order.
var AllRoles = []Role{RoleAdmin, RoleDoctor, RoleFrontDesk, RolePatient}

type User struct {
	ID         uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Email      string     `json:"email" gorm:"uniqueIndex;not null"`
	Password   string     `json:"-" gorm:"not null"` // bcrypt hash, hide in json
	Role       Role       `json:"role" gorm:"not null"`
	HospitalID uuid.UUID  `json:"hospital_id" gorm:"type:uuid;not null;index"`
	PatientID  *uuid.UUID `json:"patient_id,omitempty" gorm:"type:uuid"` // set for PATIENT accounts
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (s Role) IsValid() bool {
	switch s {
	case RoleAdmin, RoleDoctor, RoleFrontDesk, RolePatient:
		return true
	}
	return false
}

func (s Role) String() string {
	return string(s)
}

func IsValidRole(role string) bool {
	return Role(role).IsValid()
}

// ParseRole converts a raw string to a Role, reporting whether it is a member
// of the closed set.
func ParseRole(role string) (Role, bool) {
	r := Role(role)
	return r, r.IsValid()
}

// IsStaff reports whether the role works the hospital side of the application.
func (s Role) IsStaff() bool {
	return s == RoleAdmin || s == RoleDoctor || s == RoleFrontDesk
}
