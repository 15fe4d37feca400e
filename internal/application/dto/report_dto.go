package dto

// TopClientResponse fila del reporte de mejores clientes.
type TopClientResponse struct {
	Total  float64        `json:"total"`
	Client ClientResponse `json:"cliente"`
}

// TopSellerResponse fila del reporte de mejores vendedores.
type TopSellerResponse struct {
	Total  float64      `json:"total"`
	Seller UserResponse `json:"vendedor"`
}
