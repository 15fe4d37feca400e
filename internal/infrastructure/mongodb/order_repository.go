package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre la colección pedidos.
// Incluye las agregaciones de reportes (mejores clientes / mejores vendedores).
type OrderRepo struct {
	col *mongo.Collection
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{col: db.Collection(colOrders)}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	objectID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var o entity.Order
	err = r.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &o, nil
}

// List devuelve todos los pedidos, sin filtrar por vendedor.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.find(ctx, bson.M{})
}

// ListBySeller devuelve los pedidos del vendedor indicado.
func (r *OrderRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	sellerOID, err := oid(sellerID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"vendedor": sellerOID})
}

// ListBySellerAndStatus devuelve los pedidos del vendedor con el estado dado.
func (r *OrderRepo) ListBySellerAndStatus(ctx context.Context, sellerID, status string) ([]*entity.Order, error) {
	sellerOID, err := oid(sellerID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"vendedor": sellerOID, "estado": status})
}

func (r *OrderRepo) find(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	var orders []*entity.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode pedidos: %w", err)
	}
	return orders, nil
}

// Update escribe los campos editables del pedido. Vendedor y cliente no cambian.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	set := bson.M{
		"pedido": order.Items,
		"total":  order.Total,
		"estado": order.Status,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Delete elimina un pedido por ID. La existencia de los productos no se repone.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	objectID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// TopClients agrupa los pedidos completados por cliente, suma totales y
// resuelve el documento del cliente vía $lookup. Sin orden ni límite.
func (r *OrderRepo) TopClients(ctx context.Context) ([]*entity.TopClient, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "estado", Value: entity.OrderStatusCompleted}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$cliente"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colClients},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "cliente"},
		}}},
		{{Key: "$unwind", Value: "$cliente"}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("agregación mejores clientes: %w", err)
	}
	var rows []*entity.TopClient
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode mejores clientes: %w", err)
	}
	return rows, nil
}

// TopSellers agrupa los pedidos completados por vendedor, suma totales,
// ordena por total descendente (empates por _id ascendente) y conserva 3.
func (r *OrderRepo) TopSellers(ctx context.Context) ([]*entity.TopSeller, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "estado", Value: entity.OrderStatusCompleted}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$vendedor"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "total", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: 3}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsers},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "vendedor"},
		}}},
		{{Key: "$unwind", Value: "$vendedor"}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("agregación mejores vendedores: %w", err)
	}
	var rows []*entity.TopSeller
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode mejores vendedores: %w", err)
	}
	return rows, nil
}
