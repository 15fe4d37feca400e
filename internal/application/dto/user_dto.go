package dto

import "time"

// RegisterRequest datos de registro de un vendedor.
type RegisterRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representación externa de un usuario.
// No incluye el hash de la contraseña.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"creado"`
}

// LoginResponse token firmado tras autenticación exitosa.
type LoginResponse struct {
	Token string `json:"token"`
}
