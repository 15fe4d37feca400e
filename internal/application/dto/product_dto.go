package dto

import "time"

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Stock       int     `json:"existencia"`
	Price       float64 `json:"precio"`
}

// UpdateProductRequest campos editables de un producto. Solo los campos
// no nulos se aplican; ningún otro campo del documento puede cambiar.
type UpdateProductRequest struct {
	Name        *string  `json:"nombre"`
	Description *string  `json:"descripcion"`
	Stock       *int     `json:"existencia"`
	Price       *float64 `json:"precio"`
}

// ProductResponse representación externa de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Stock       int       `json:"existencia"`
	Price       float64   `json:"precio"`
	CreatedAt   time.Time `json:"creado"`
}
