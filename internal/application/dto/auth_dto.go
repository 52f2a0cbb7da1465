package dto

import "time"

// LoginRequest entrada de login: email o documento nacional + contraseña.
type LoginRequest struct {
	Login    string `json:"login" validate:"required,max=200"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse identidad y permisos de la sesión actual.
type SessionResponse struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	DistrictID  string   `json:"district_id,omitempty"`
	GroupID     string   `json:"group_id,omitempty"`
	Permissions []string `json:"permissions"`
}

// LoginResponse token de sesión y datos de la sesión abierta.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   SessionResponse `json:"session"`
}
