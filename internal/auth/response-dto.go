package auth

import "time"

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	HospitalID string    `json:"hospital_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthResponse is the login/register success body. Tokens also travel as
// cookies; they are echoed here for non-browser clients.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
}

// MeResponse echoes the verified claims for the session probe endpoint.
type MeResponse struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	HospitalID string `json:"hospital_id"`
}
