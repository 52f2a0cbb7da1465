package entity

import (
	"fmt"
	"strings"
	"time"
)

// Position cargo dentro de la junta directiva de un grupo.
type Position string

const (
	PositionPresident Position = "PRESIDENTE"
	PositionSecretary Position = "SECRETARIO"
	PositionTreasurer Position = "TESORERO"
	PositionVocal     Position = "VOCAL"
)

// ParsePosition convierte un string en Position (sin distinguir mayúsculas).
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PositionPresident, PositionSecretary, PositionTreasurer, PositionVocal:
		return p, nil
	}
	return "", fmt.Errorf("cargo desconocido: %q", s)
}

// Unique informa si el cargo solo puede ocuparlo una persona por grupo.
func (p Position) Unique() bool {
	return p != PositionVocal
}

// DirectiveMember integrante de la junta directiva de un grupo.
type DirectiveMember struct {
	ID         string
	GroupID    string
	FullName   string
	NationalID string // solo dígitos
	Position   Position
	Phone      string
	ElectedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
