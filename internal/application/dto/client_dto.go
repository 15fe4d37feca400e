package dto

import "time"

// CreateClientRequest datos para crear un cliente. El vendedor se estampa
// desde la identidad autenticada, nunca desde el input.
type CreateClientRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Company   string `json:"empresa"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
}

// UpdateClientRequest campos editables de un cliente.
type UpdateClientRequest struct {
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	Company   *string `json:"empresa"`
	Email     *string `json:"email"`
	Phone     *string `json:"telefono"`
}

// ClientResponse representación externa de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Company   string    `json:"empresa"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono"`
	Seller    string    `json:"vendedor"`
	CreatedAt time.Time `json:"creado"`
}
