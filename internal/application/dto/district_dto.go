package dto

import "time"

// CreateDistrictRequest entrada para crear un distrito.
type CreateDistrictRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	Municipality string `json:"municipality" validate:"max=120"`
}

// UpdateDistrictRequest entrada para actualizar un distrito (campos opcionales).
type UpdateDistrictRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=120"`
	Municipality *string `json:"municipality" validate:"omitempty,max=120"`
}

// DistrictResponse salida de un distrito.
type DistrictResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Municipality string    `json:"municipality"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DistrictListResponse lista paginada de distritos.
type DistrictListResponse struct {
	Items []DistrictResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
