// Package password es la primitiva de hash de secretos (bcrypt: salado y de comparación en tiempo constante).
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt implementa hash y verificación con un costo configurable.
type Bcrypt struct {
	cost int
}

// NewBcrypt construye el hasher. Un costo fuera de rango usa bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash genera el hash almacenable de plaintext. Se usa solo al crear o cambiar contraseñas.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("password: contraseña vacía")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("password: generar hash: %w", err)
	}
	return string(h), nil
}

// Verify compara plaintext contra el hash. Un hash malformado o una contraseña vacía devuelven false.
func (b *Bcrypt) Verify(plaintext, storedHash string) bool {
	if plaintext == "" || storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
