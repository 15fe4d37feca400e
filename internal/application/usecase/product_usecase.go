package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/repository"
)

// searchLimit tope de resultados de la búsqueda por texto.
const searchLimit = 10

// ProductUseCase casos de uso CRUD y búsqueda para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Description: in.Description,
		Stock:       in.Stock,
		Price:       in.Price,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca productos por texto, ordenados por relevancia del índice,
// con tope de 10 resultados.
func (uc *ProductUseCase) Search(ctx context.Context, text string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.Search(ctx, text, searchLimit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update aplica los campos no nulos del input y devuelve el producto actualizado.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Devuelve ErrProductNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Stock,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductResponses(list []*entity.Product) []*dto.ProductResponse {
	items := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}
