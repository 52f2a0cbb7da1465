package dto

import "time"

// CreateDirectiveMemberRequest entrada para agregar un integrante a la junta directiva.
type CreateDirectiveMemberRequest struct {
	FullName   string     `json:"full_name" validate:"required,min=3,max=200"`
	NationalID string     `json:"national_id" validate:"required,max=30"`
	Position   string     `json:"position" validate:"required,oneof=PRESIDENTE SECRETARIO TESORERO VOCAL presidente secretario tesorero vocal"`
	Phone      string     `json:"phone" validate:"max=30"`
	ElectedAt  *time.Time `json:"elected_at"`
}

// UpdateDirectiveMemberRequest entrada para actualizar un integrante.
type UpdateDirectiveMemberRequest struct {
	FullName  *string    `json:"full_name" validate:"omitempty,min=3,max=200"`
	Position  *string    `json:"position" validate:"omitempty,oneof=PRESIDENTE SECRETARIO TESORERO VOCAL presidente secretario tesorero vocal"`
	Phone     *string    `json:"phone" validate:"omitempty,max=30"`
	ElectedAt *time.Time `json:"elected_at"`
}

// DirectiveMemberResponse salida de un integrante de la junta directiva.
type DirectiveMemberResponse struct {
	ID         string     `json:"id"`
	GroupID    string     `json:"group_id"`
	FullName   string     `json:"full_name"`
	NationalID string     `json:"national_id"`
	Position   string     `json:"position"`
	Phone      string     `json:"phone,omitempty"`
	ElectedAt  *time.Time `json:"elected_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
