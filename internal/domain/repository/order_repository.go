package repository

import (
	"context"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP),
// incluidas las agregaciones de reportes sobre pedidos completados.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error)
	ListBySellerAndStatus(ctx context.Context, sellerID, status string) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
	// TopClients agrupa pedidos COMPLETED por cliente y suma totales.
	TopClients(ctx context.Context) ([]*entity.TopClient, error)
	// TopSellers agrupa pedidos COMPLETED por vendedor, suma totales y
	// conserva los 3 mayores (empates por _id ascendente).
	TopSellers(ctx context.Context) ([]*entity.TopSeller, error)
}
