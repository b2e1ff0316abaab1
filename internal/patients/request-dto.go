package patients

// ListQuery filters the hospital patient roster. Limit is clamped server side.
type ListQuery struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=25"`
}

type CreatePatientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	DOB         string `json:"dob" binding:"required"` // YYYY-MM-DD
	ContactInfo string `json:"contact_info"`
}

// UpdateProfileRequest is the patient-facing profile edit. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	ContactInfo *string `json:"contact_info"`
}
