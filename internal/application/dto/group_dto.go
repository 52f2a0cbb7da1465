package dto

import "time"

// CreateGroupRequest entrada para crear un grupo; Board permite registrar la junta directiva inicial.
type CreateGroupRequest struct {
	DistrictID string                        `json:"district_id" validate:"required"`
	Name       string                        `json:"name" validate:"required,min=2,max=160"`
	Community  string                        `json:"community" validate:"max=160"`
	FoundedAt  *time.Time                    `json:"founded_at"`
	Board      []CreateDirectiveMemberRequest `json:"board" validate:"omitempty,dive"`
}

// UpdateGroupRequest entrada para actualizar un grupo.
type UpdateGroupRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=2,max=160"`
	Community *string    `json:"community" validate:"omitempty,max=160"`
	FoundedAt *time.Time `json:"founded_at"`
	Active    *bool      `json:"active"`
}

// GroupResponse salida de un grupo.
type GroupResponse struct {
	ID         string                    `json:"id"`
	DistrictID string                    `json:"district_id"`
	Name       string                    `json:"name"`
	Community  string                    `json:"community"`
	FoundedAt  *time.Time                `json:"founded_at,omitempty"`
	Active     bool                      `json:"active"`
	Board      []DirectiveMemberResponse `json:"board,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

// GroupListResponse lista paginada de grupos.
type GroupListResponse struct {
	Items []GroupResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
