package repository

import (
	"context"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
