package entity

// TopClient fila del reporte de mejores clientes: total acumulado de pedidos
// completados más el documento del cliente resuelto vía $lookup.
type TopClient struct {
	Total  float64 `bson:"total"`
	Client Client  `bson:"cliente"`
}

// TopSeller fila del reporte de mejores vendedores (máximo 3, total descendente).
type TopSeller struct {
	Total  float64 `bson:"total"`
	Seller User    `bson:"vendedor"`
}
