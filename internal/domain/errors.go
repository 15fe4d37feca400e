package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes visibles al usuario se conservan de la aplicación original.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrClientNotFound      = errors.New("cliente no encontrado")
	ErrOrderNotFound       = errors.New("pedido no encontrado")
	ErrUserNotFound        = errors.New("el usuario no está registrado")
	ErrEmailAlreadyExists  = errors.New("el usuario ya está registrado")
	ErrClientAlreadyExists = errors.New("ese cliente ya está registrado")
	ErrInvalidCredentials  = errors.New("la contraseña es incorrecta")
	ErrForbidden           = errors.New("no tienes permiso")
	ErrUnauthenticated     = errors.New("no autenticado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInsufficientStock   = errors.New("stock insuficiente")
)
