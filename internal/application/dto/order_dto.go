package dto

import "time"

// OrderItemInput línea de pedido: producto y cantidad.
type OrderItemInput struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"cantidad"`
}

// CreateOrderRequest datos para crear un pedido.
type CreateOrderRequest struct {
	Items  []OrderItemInput `json:"pedido"`
	Total  float64          `json:"total"`
	Client string           `json:"cliente"`
	Status string           `json:"estado"`
}

// UpdateOrderRequest campos editables de un pedido. Items en nil significa
// sin cambio; una lista (aun vacía) reemplaza las líneas y descuenta stock.
type UpdateOrderRequest struct {
	Items  []OrderItemInput `json:"pedido"`
	Total  *float64         `json:"total"`
	Status *string          `json:"estado"`
}

// OrderItemResponse línea de pedido en la representación externa.
type OrderItemResponse struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"cantidad"`
}

// OrderResponse representación externa de un pedido.
type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderItemResponse `json:"pedido"`
	Total     float64             `json:"total"`
	Client    string              `json:"cliente"`
	Seller    string              `json:"vendedor"`
	Status    string              `json:"estado"`
	CreatedAt time.Time           `json:"creado"`
}
