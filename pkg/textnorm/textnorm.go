// Package textnorm produce claves de comparación para nombres en español (sin tildes ni mayúsculas).
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key devuelve el nombre sin marcas diacríticas, en minúsculas y con espacios colapsados.
// "  San José   del Río " -> "san jose del rio".
func Key(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// Clean recorta y colapsa espacios conservando tildes y mayúsculas.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
