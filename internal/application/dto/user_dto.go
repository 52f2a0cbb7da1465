package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
// Se requiere email o national_id como identificador de login.
type CreateUserRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=200"`
	Email      string  `json:"email" validate:"required_without=NationalID,omitempty,email"`
	NationalID string  `json:"national_id" validate:"required_without=Email,omitempty,max=30"`
	Password   string  `json:"password" validate:"required,min=8"`
	Role       string  `json:"role" validate:"required"`
	DistrictID *string `json:"district_id"`
	GroupID    *string `json:"group_id"`
}

// UpdateUserRequest entrada para actualizar un usuario. Role, DistrictID y GroupID se validan juntos.
type UpdateUserRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=200"`
	Password   *string `json:"password" validate:"omitempty,min=8"`
	Role       *string `json:"role"`
	DistrictID *string `json:"district_id"`
	GroupID    *string `json:"group_id"`
	Active     *bool   `json:"active"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	Role       string    `json:"role"`
	DistrictID *string   `json:"district_id,omitempty"`
	GroupID    *string   `json:"group_id,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
