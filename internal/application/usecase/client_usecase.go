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

// ClientUseCase casos de uso CRUD para clientes, con control de acceso por
// vendedor: una vez estampado, el campo vendedor decide todo acceso futuro.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente estampando al vendedor autenticado como dueño.
// Devuelve ErrClientAlreadyExists si el email ya está registrado.
func (uc *ClientUseCase) Create(ctx context.Context, sellerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	sellerOID, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrClientAlreadyExists
	}
	client := &entity.Client{
		ID:        primitive.NewObjectID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Seller:    sellerOID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente. Devuelve ErrClientNotFound si no existe y
// ErrForbidden si el vendedor autenticado no es su dueño.
func (uc *ClientUseCase) GetByID(ctx context.Context, id, sellerID string) (*dto.ClientResponse, error) {
	client, err := uc.owned(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetForOrder resuelve el cliente referenciado por un pedido, sin control de
// dueño (equivale al populate del campo cliente). Devuelve (nil, nil) si el
// cliente ya no existe.
func (uc *ClientUseCase) GetForOrder(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// ListBySeller devuelve los clientes del vendedor autenticado.
func (uc *ClientUseCase) ListBySeller(ctx context.Context, sellerID string) ([]*dto.ClientResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	list, err := uc.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClientResponse(c))
	}
	return items, nil
}

// Update aplica los campos no nulos del input sobre un cliente propio.
func (uc *ClientUseCase) Update(ctx context.Context, id, sellerID string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.owned(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		client.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.Company != nil {
		client.Company = *in.Company
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente propio.
func (uc *ClientUseCase) Delete(ctx context.Context, id, sellerID string) error {
	if _, err := uc.owned(ctx, id, sellerID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// owned carga el cliente y aplica la puerta not-found/forbidden común.
func (uc *ClientUseCase) owned(ctx context.Context, id, sellerID string) (*entity.Client, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if client.Seller.Hex() != sellerID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID.Hex(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Seller:    c.Seller.Hex(),
		CreatedAt: c.CreatedAt,
	}
}
