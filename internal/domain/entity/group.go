package entity

import "time"

// Group representa un grupo de ahorro y préstamo comunitario (GAPC) dentro de un distrito.
type Group struct {
	ID         string
	DistrictID string
	Name       string
	Community  string
	FoundedAt  *time.Time
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
