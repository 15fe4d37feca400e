package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/repository"
)

// OrderUseCase casos de uso para pedidos: CRUD con control de acceso por
// vendedor y descuento de existencia todo-o-nada al crear o actualizar líneas.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, clientRepo repository.ClientRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, clientRepo: clientRepo, productRepo: productRepo}
}

// Create crea un pedido del vendedor autenticado. El cliente debe existir y
// pertenecerle. Las líneas se validan todas contra la existencia actual antes
// de escribir nada; solo después se aplican los decrementos.
func (uc *OrderUseCase) Create(ctx context.Context, sellerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	sellerOID, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, in.Client)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if client.Seller.Hex() != sellerID {
		return nil, domain.ErrForbidden
	}

	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.reserveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:        primitive.NewObjectID(),
		Items:     items,
		Total:     in.Total,
		Client:    client.ID,
		Seller:    sellerOID,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido. Devuelve ErrOrderNotFound si no existe y
// ErrForbidden si el vendedor autenticado no es su dueño.
func (uc *OrderUseCase) GetByID(ctx context.Context, id, sellerID string) (*dto.OrderResponse, error) {
	order, err := uc.owned(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve todos los pedidos de todos los vendedores, sin filtrar.
func (uc *OrderUseCase) List(ctx context.Context) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySeller devuelve los pedidos del vendedor autenticado.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, sellerID string) ([]*dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	list, err := uc.orderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByStatus devuelve los pedidos del vendedor autenticado con el estado dado.
func (uc *OrderUseCase) ListByStatus(ctx context.Context, sellerID, status string) ([]*dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.ListBySellerAndStatus(ctx, sellerID, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Update aplica los campos no nulos del input sobre un pedido propio. Si el
// input trae líneas nuevas, repite la validación y el descuento de existencia
// todo-o-nada de la creación.
func (uc *OrderUseCase) Update(ctx context.Context, id, sellerID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.owned(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}
	if in.Items != nil {
		items, err := uc.reserveItems(ctx, in.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido propio. La existencia descontada no se repone.
func (uc *OrderUseCase) Delete(ctx context.Context, id, sellerID string) error {
	if _, err := uc.owned(ctx, id, sellerID); err != nil {
		return err
	}
	return uc.orderRepo.Delete(ctx, id)
}

// reserveItems valida cada línea contra la existencia actual (sin escribir) y
// luego aplica los decrementos con guarda. Si un decremento pierde la carrera
// contra otro pedido, los ya aplicados en esta petición se compensan y la
// operación falla completa: ninguna línea queda descontada a medias.
func (uc *OrderUseCase) reserveItems(ctx context.Context, in []dto.OrderItemInput) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(in))
	for _, line := range in {
		productOID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		if line.Quantity > product.Stock {
			return nil, fmt.Errorf("el articulo %s excede la cantidad disponible: %w", product.Name, domain.ErrInsufficientStock)
		}
		items = append(items, entity.OrderItem{ProductID: productOID, Quantity: line.Quantity})
	}

	for i, item := range items {
		if err := uc.productRepo.DecrementStock(ctx, item.ProductID.Hex(), item.Quantity); err != nil {
			for j := 0; j < i; j++ {
				_ = uc.productRepo.RestoreStock(ctx, items[j].ProductID.Hex(), items[j].Quantity)
			}
			return nil, err
		}
	}
	return items, nil
}

// owned carga el pedido y aplica la puerta not-found/forbidden común.
func (uc *OrderUseCase) owned(ctx context.Context, id, sellerID string) (*entity.Order, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.Seller.Hex() != sellerID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{ProductID: it.ProductID.Hex(), Quantity: it.Quantity})
	}
	return &dto.OrderResponse{
		ID:        o.ID.Hex(),
		Items:     items,
		Total:     o.Total,
		Client:    o.Client.Hex(),
		Seller:    o.Seller.Hex(),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func toOrderResponses(list []*entity.Order) []*dto.OrderResponse {
	items := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return items
}
