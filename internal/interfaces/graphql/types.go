package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
)

// gqlTypes agrupa los tipos del esquema. Los nombres de campo conservan el
// esquema original de la aplicación (nombre, apellido, existencia, vendedor...);
// el resolver por defecto los resuelve vía los tags json de los DTO.
type gqlTypes struct {
	user      *graphql.Object
	token     *graphql.Object
	product   *graphql.Object
	client    *graphql.Object
	order     *graphql.Object
	topClient *graphql.Object
	topSeller *graphql.Object

	userInput          *graphql.InputObject
	authInput          *graphql.InputObject
	productInput       *graphql.InputObject
	updateProductInput *graphql.InputObject
	clientInput        *graphql.InputObject
	updateClientInput  *graphql.InputObject
	orderInput         *graphql.InputObject
	updateOrderInput   *graphql.InputObject
}

func newTypes(deps Deps) *gqlTypes {
	t := &gqlTypes{}

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "Usuario",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"creado":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.token = graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
		},
	})

	t.product = graphql.NewObject(graphql.ObjectConfig{
		Name: "Producto",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.ID},
			"nombre":      &graphql.Field{Type: graphql.String},
			"descripcion": &graphql.Field{Type: graphql.String},
			"existencia":  &graphql.Field{Type: graphql.Int},
			"precio":      &graphql.Field{Type: graphql.Float},
			"creado":      &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.client = graphql.NewObject(graphql.ObjectConfig{
		Name: "Cliente",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"empresa":  &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"telefono": &graphql.Field{Type: graphql.String},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"creado":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	orderItem := graphql.NewObject(graphql.ObjectConfig{
		Name: "PedidoProducto",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"cantidad": &graphql.Field{Type: graphql.Int},
		},
	})

	t.order = graphql.NewObject(graphql.ObjectConfig{
		Name: "Pedido",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"pedido":   &graphql.Field{Type: graphql.NewList(orderItem)},
			"total":    &graphql.Field{Type: graphql.Float},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"estado":   &graphql.Field{Type: graphql.String},
			"creado":   &graphql.Field{Type: graphql.DateTime},
			// cliente se resuelve contra la colección (populate del original).
			"cliente": &graphql.Field{
				Type: t.client,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					order, ok := p.Source.(*dto.OrderResponse)
					if !ok {
						return nil, nil
					}
					return deps.Clients.GetForOrder(p.Context, order.Client)
				},
			},
		},
	})

	t.topClient = graphql.NewObject(graphql.ObjectConfig{
		Name: "TopCliente",
		Fields: graphql.Fields{
			"total":   &graphql.Field{Type: graphql.Float},
			"cliente": &graphql.Field{Type: t.client},
		},
	})

	t.topSeller = graphql.NewObject(graphql.ObjectConfig{
		Name: "TopVendedor",
		Fields: graphql.Fields{
			"total":    &graphql.Field{Type: graphql.Float},
			"vendedor": &graphql.Field{Type: t.user},
		},
	})

	t.userInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UsuarioInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.authInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AutenticarInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.productInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"descripcion": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"existencia":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"precio":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	t.updateProductInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ActualizarProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"descripcion": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"existencia":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"precio":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	t.clientInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ClienteInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	t.updateClientInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ActualizarClienteInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	orderItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"cantidad": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	t.orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(orderItemInput))},
			"total":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"cliente": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"estado":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	t.updateOrderInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ActualizarPedidoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"pedido": &graphql.InputObjectFieldConfig{Type: graphql.NewList(orderItemInput)},
			"total":  &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"estado": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	return t
}
