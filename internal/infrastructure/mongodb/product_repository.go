package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección productos.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(colProducts)}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.col.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	objectID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var p entity.Product
	err = r.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	return products, nil
}

// Search busca por texto sobre el índice nombre/descripción, ordenado por
// relevancia (textScore) y limitado a limit resultados.
func (r *ProductRepo) Search(ctx context.Context, text string, limit int64) ([]*entity.Product, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	return products, nil
}

// Update escribe los campos editables del producto (sin spread dinámico del input).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	set := bson.M{
		"nombre":      product.Name,
		"descripcion": product.Description,
		"existencia":  product.Stock,
		"precio":      product.Price,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	objectID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DecrementStock descuenta qty con guarda existencia >= qty en el mismo filtro,
// de modo que un decremento nunca deja existencia negativa aunque otro pedido
// compita por el mismo producto.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	objectID, err := oid(id)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": objectID, "existencia": bson.M{"$gte": qty}}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"existencia": -qty}})
	if err != nil {
		return fmt.Errorf("decrementar existencia: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// RestoreStock repone qty unidades (compensación de un decremento previo).
func (r *ProductRepo) RestoreStock(ctx context.Context, id string, qty int) error {
	objectID, err := oid(id)
	if err != nil {
		return err
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$inc": bson.M{"existencia": qty}})
	if err != nil {
		return fmt.Errorf("reponer existencia: %w", err)
	}
	return nil
}
