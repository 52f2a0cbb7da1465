package entity

import "time"

// District representa un distrito del programa; agrupa los grupos GAPC que atiende un promotor.
type District struct {
	ID           string
	Name         string
	NameKey      string // nombre normalizado (sin tildes, minúsculas) para detectar duplicados
	Municipality string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
