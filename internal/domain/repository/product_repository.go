package repository

import (
	"context"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Search busca por texto sobre el índice de nombre/descripción,
	// ordenado por relevancia y limitado a limit resultados.
	Search(ctx context.Context, text string, limit int64) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock descuenta qty solo si existencia >= qty; si no hay
	// stock suficiente retorna domain.ErrInsufficientStock sin escribir.
	DecrementStock(ctx context.Context, id string, qty int) error
	// RestoreStock repone qty unidades (compensación de un decremento previo).
	RestoreStock(ctx context.Context, id string, qty int) error
}
