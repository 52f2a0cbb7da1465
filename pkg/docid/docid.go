// Package docid limpia los identificadores de login: documento nacional (solo dígitos) o email.
package docid

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	minNationalIDDigits = 8
	maxNationalIDDigits = 20
)

// NormalizeNationalID conserva solo los dígitos del documento.
// "01234567-8", "0123.4567 8" y "012345678" producen "012345678".
func NormalizeNationalID(raw string) string {
	return string(extractDigits(raw))
}

// ValidateNationalID valida que el documento, una vez limpio, tenga una longitud razonable.
func ValidateNationalID(raw string) error {
	digits := extractDigits(raw)
	if len(digits) < minNationalIDDigits {
		return fmt.Errorf("docid: el documento debe tener al menos %d dígitos, se encontraron %d", minNationalIDDigits, len(digits))
	}
	if len(digits) > maxNationalIDDigits {
		return fmt.Errorf("docid: el documento admite máximo %d dígitos, se encontraron %d", maxNationalIDDigits, len(digits))
	}
	return nil
}

// NormalizeEmail recorta espacios y pasa a minúsculas.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Kind tipo de identificador de login.
type Kind int

const (
	KindEmpty Kind = iota
	KindEmail
	KindNationalID
)

// NormalizeLogin decide si el identificador es un email o un documento y lo normaliza.
// Un identificador sin '@' y sin dígitos queda vacío (KindEmpty).
func NormalizeLogin(raw string) (string, Kind) {
	trimmed := strings.TrimSpace(raw)
	if strings.Contains(trimmed, "@") {
		return NormalizeEmail(trimmed), KindEmail
	}
	digits := NormalizeNationalID(trimmed)
	if digits == "" {
		return "", KindEmpty
	}
	return digits, KindNationalID
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
