package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/auth"
	"github.com/jonnattanChoque/CRMGraphQL/internal/application/usecase"
)

// Deps son los casos de uso que alimentan los resolvers del esquema.
type Deps struct {
	Auth     *auth.AuthUseCase
	Products *usecase.ProductUseCase
	Clients  *usecase.ClientUseCase
	Orders   *usecase.OrderUseCase
	Reports  *usecase.ReportUseCase
}

// NewSchema construye el esquema GraphQL completo: queries, mutaciones y tipos.
func NewSchema(deps Deps) (graphql.Schema, error) {
	t := newTypes(deps)

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: t.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Auth.CurrentUser(IdentityFrom(p.Context))
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(t.product),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Products.List(p.Context)
				},
			},
			"product": &graphql.Field{
				Type: t.product,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Products.GetByID(p.Context, strArg(p.Args, "id"))
				},
			},
			"searchProduct": &graphql.Field{
				Type: graphql.NewList(t.product),
				Args: graphql.FieldConfigArgument{
					"text": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Products.Search(p.Context, strArg(p.Args, "text"))
				},
			},
			"clientsBySeller": &graphql.Field{
				Type: graphql.NewList(t.client),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Clients.ListBySeller(p.Context, sellerID(p.Context))
				},
			},
			"client": &graphql.Field{
				Type: t.client,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Clients.GetByID(p.Context, strArg(p.Args, "id"), sellerID(p.Context))
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(t.order),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Orders.List(p.Context)
				},
			},
			"ordersBySeller": &graphql.Field{
				Type: graphql.NewList(t.order),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Orders.ListBySeller(p.Context, sellerID(p.Context))
				},
			},
			"order": &graphql.Field{
				Type: t.order,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Orders.GetByID(p.Context, strArg(p.Args, "id"), sellerID(p.Context))
				},
			},
			"ordersByStatus": &graphql.Field{
				Type: graphql.NewList(t.order),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Orders.ListByStatus(p.Context, sellerID(p.Context), strArg(p.Args, "status"))
				},
			},
			"topClients": &graphql.Field{
				Type: graphql.NewList(t.topClient),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Reports.TopClients(p.Context)
				},
			},
			"topSellers": &graphql.Field{
				Type: graphql.NewList(t.topSeller),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Reports.TopSellers(p.Context)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"newUser": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.userInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Auth.Register(p.Context, decodeRegister(inputArg(p.Args)))
				},
			},
			"authenticateUser": &graphql.Field{
				Type: t.token,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.authInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Auth.Login(p.Context, decodeLogin(inputArg(p.Args)))
				},
			},
			"newProduct": &graphql.Field{
				Type: t.product,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Products.Create(p.Context, decodeCreateProduct(inputArg(p.Args)))
				},
			},
			"updateProduct": &graphql.Field{
				Type: t.product,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.updateProductInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Products.Update(p.Context, strArg(p.Args, "id"), decodeUpdateProduct(inputArg(p.Args)))
				},
			},
			"deleteProduct": &graphql.Field{
				Type: graphql.String,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := deps.Products.Delete(p.Context, strArg(p.Args, "id")); err != nil {
						return nil, err
					}
					return "Producto eliminado", nil
				},
			},
			"newClient": &graphql.Field{
				Type: t.client,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.clientInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Clients.Create(p.Context, sellerID(p.Context), decodeCreateClient(inputArg(p.Args)))
				},
			},
			"updateClient": &graphql.Field{
				Type: t.client,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.updateClientInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Clients.Update(p.Context, strArg(p.Args, "id"), sellerID(p.Context), decodeUpdateClient(inputArg(p.Args)))
				},
			},
			"deleteClient": &graphql.Field{
				Type: graphql.String,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := deps.Clients.Delete(p.Context, strArg(p.Args, "id"), sellerID(p.Context)); err != nil {
						return nil, err
					}
					return "Cliente eliminado", nil
				},
			},
			"newOrder": &graphql.Field{
				Type: t.order,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Orders.Create(p.Context, sellerID(p.Context), decodeCreateOrder(inputArg(p.Args)))
				},
			},
			"updateOrder": &graphql.Field{
				Type: t.order,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.updateOrderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Orders.Update(p.Context, strArg(p.Args, "id"), sellerID(p.Context), decodeUpdateOrder(inputArg(p.Args)))
				},
			},
			"deleteOrder": &graphql.Field{
				Type: graphql.String,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := deps.Orders.Delete(p.Context, strArg(p.Args, "id"), sellerID(p.Context)); err != nil {
						return nil, err
					}
					return "Pedido eliminado", nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
