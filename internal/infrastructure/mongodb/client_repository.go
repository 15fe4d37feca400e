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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre la colección clientes.
type ClientRepo struct {
	col *mongo.Collection
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db *mongo.Database) *ClientRepo {
	return &ClientRepo{col: db.Collection(colClients)}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if _, err := r.col.InsertOne(ctx, client); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrClientAlreadyExists
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	objectID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var c entity.Client
	err = r.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene un cliente por email. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var c entity.Client
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente por email: %w", err)
	}
	return &c, nil
}

// ListBySeller devuelve los clientes del vendedor indicado.
func (r *ClientRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Client, error) {
	sellerOID, err := oid(sellerID)
	if err != nil {
		return nil, err
	}
	cursor, err := r.col.Find(ctx, bson.M{"vendedor": sellerOID})
	if err != nil {
		return nil, fmt.Errorf("list clientes por vendedor: %w", err)
	}
	var clients []*entity.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clientes: %w", err)
	}
	return clients, nil
}

// Update escribe los campos editables del cliente. El vendedor no es editable.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	set := bson.M{
		"nombre":   client.FirstName,
		"apellido": client.LastName,
		"empresa":  client.Company,
		"email":    client.Email,
		"telefono": client.Phone,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": client.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	objectID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
