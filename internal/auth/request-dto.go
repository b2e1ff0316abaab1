package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required"`
	HospitalCode string `json:"hospital_code" binding:"required"`
	Name         string `json:"name" binding:"omitempty,max=255"` // patient display name
}
