package usecase

import (
	"context"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/repository"
)

// ReportUseCase reportes agregados sobre pedidos completados.
type ReportUseCase struct {
	orderRepo repository.OrderRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orderRepo repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo}
}

// TopClients devuelve el total acumulado por cliente sobre pedidos completados.
func (uc *ReportUseCase) TopClients(ctx context.Context) ([]*dto.TopClientResponse, error) {
	rows, err := uc.orderRepo.TopClients(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.TopClientResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.TopClientResponse{
			Total:  row.Total,
			Client: *toClientResponse(&row.Client),
		})
	}
	return items, nil
}

// TopSellers devuelve los 3 vendedores con mayor total acumulado sobre
// pedidos completados, descendente por total y empates por id ascendente.
func (uc *ReportUseCase) TopSellers(ctx context.Context) ([]*dto.TopSellerResponse, error) {
	rows, err := uc.orderRepo.TopSellers(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.TopSellerResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.TopSellerResponse{
			Total:  row.Total,
			Seller: *toSellerResponse(&row.Seller),
		})
	}
	return items, nil
}

// toSellerResponse mapea un usuario a su representación externa (sin hash).
func toSellerResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
