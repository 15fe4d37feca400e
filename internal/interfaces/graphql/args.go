package graphql

import "github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"

// Decodificación explícita de inputs GraphQL hacia los DTO de aplicación.
// Cada campo se copia por nombre; campos inesperados del input nunca llegan
// a un documento.

func strArg(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intArg(m map[string]interface{}, key string) int {
	n, _ := m[key].(int)
	return n
}

func floatArg(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func optStrArg(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optIntArg(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func optFloatArg(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func inputArg(m map[string]interface{}) map[string]interface{} {
	in, _ := m["input"].(map[string]interface{})
	return in
}

func decodeRegister(m map[string]interface{}) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: strArg(m, "nombre"),
		LastName:  strArg(m, "apellido"),
		Email:     strArg(m, "email"),
		Password:  strArg(m, "password"),
	}
}

func decodeLogin(m map[string]interface{}) dto.LoginRequest {
	return dto.LoginRequest{
		Email:    strArg(m, "email"),
		Password: strArg(m, "password"),
	}
}

func decodeCreateProduct(m map[string]interface{}) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        strArg(m, "nombre"),
		Description: strArg(m, "descripcion"),
		Stock:       intArg(m, "existencia"),
		Price:       floatArg(m, "precio"),
	}
}

func decodeUpdateProduct(m map[string]interface{}) dto.UpdateProductRequest {
	return dto.UpdateProductRequest{
		Name:        optStrArg(m, "nombre"),
		Description: optStrArg(m, "descripcion"),
		Stock:       optIntArg(m, "existencia"),
		Price:       optFloatArg(m, "precio"),
	}
}

func decodeCreateClient(m map[string]interface{}) dto.CreateClientRequest {
	return dto.CreateClientRequest{
		FirstName: strArg(m, "nombre"),
		LastName:  strArg(m, "apellido"),
		Company:   strArg(m, "empresa"),
		Email:     strArg(m, "email"),
		Phone:     strArg(m, "telefono"),
	}
}

func decodeUpdateClient(m map[string]interface{}) dto.UpdateClientRequest {
	return dto.UpdateClientRequest{
		FirstName: optStrArg(m, "nombre"),
		LastName:  optStrArg(m, "apellido"),
		Company:   optStrArg(m, "empresa"),
		Email:     optStrArg(m, "email"),
		Phone:     optStrArg(m, "telefono"),
	}
}

func decodeItems(v interface{}) []dto.OrderItemInput {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	items := make([]dto.OrderItemInput, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, dto.OrderItemInput{
			ProductID: strArg(m, "id"),
			Quantity:  intArg(m, "cantidad"),
		})
	}
	return items
}

func decodeCreateOrder(m map[string]interface{}) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Items:  decodeItems(m["pedido"]),
		Total:  floatArg(m, "total"),
		Client: strArg(m, "cliente"),
		Status: strArg(m, "estado"),
	}
}

func decodeUpdateOrder(m map[string]interface{}) dto.UpdateOrderRequest {
	req := dto.UpdateOrderRequest{
		Total:  optFloatArg(m, "total"),
		Status: optStrArg(m, "estado"),
	}
	if _, ok := m["pedido"]; ok {
		req.Items = decodeItems(m["pedido"])
	}
	return req
}
