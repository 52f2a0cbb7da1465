package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Autenticación.
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInactiveAccount   = errors.New("cuenta inactiva")
	ErrInvalidCredential = errors.New("credencial inválida")
	ErrStoreUnavailable  = errors.New("almacén de credenciales no disponible")

	// Autorización.
	ErrNotAuthenticated  = errors.New("sesión no autenticada")
	ErrMissingPermission = errors.New("permiso insuficiente")
)
