package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonnattanChoque/CRMGraphQL/internal/application/dto"
	"github.com/jonnattanChoque/CRMGraphQL/internal/application/usecase"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
)

func ptrStr(s string) *string    { return &s }
func ptrInt(n int) *int          { return &n }
func ptrFloat(f float64) *float64 { return &f }

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return usecase.NewProductUseCase(repo), repo
}

// Crear y consultar un producto por id.
func TestProduct_CreateGet(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Monitor", Description: "FHD", Stock: 5, Price: 550000,
	})
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monitor", got.Name)
	assert.Equal(t, 5, got.Stock)
}

// Consultar un id inexistente debe fallar con producto no encontrado.
func TestProduct_GetInexistente(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.GetByID(context.Background(), "ffffffffffffffffffffffff")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// La actualización solo toca los campos presentes en el input.
func TestProduct_UpdateParcial(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Monitor", Description: "FHD", Stock: 5, Price: 550000,
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Price: ptrFloat(499000),
	})
	require.NoError(t, err)
	assert.Equal(t, 499000.0, updated.Price)
	assert.Equal(t, "Monitor", updated.Name, "los campos no enviados no cambian")
	assert.Equal(t, 5, updated.Stock)

	updated, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name:  ptrStr("Monitor 24"),
		Stock: ptrInt(8),
	})
	require.NoError(t, err)
	assert.Equal(t, "Monitor 24", updated.Name)
	assert.Equal(t, 8, updated.Stock)
	assert.Equal(t, 499000.0, updated.Price)
}

// Actualizar un producto inexistente debe fallar.
func TestProduct_UpdateInexistente(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.Update(context.Background(), "ffffffffffffffffffffffff", dto.UpdateProductRequest{Name: ptrStr("x")})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Eliminar un producto y volver a pedirlo debe fallar con no encontrado.
func TestProduct_DeleteLuegoGet(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Mouse", Stock: 3, Price: 75000})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// La búsqueda respeta el tope de 10 resultados.
func TestProduct_SearchTope(t *testing.T) {
	uc, _ := newProductUC()
	for i := 0; i < 15; i++ {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Camisa deportiva", Stock: 1, Price: 10})
		require.NoError(t, err)
	}

	out, err := uc.Search(context.Background(), "camisa")
	require.NoError(t, err)
	assert.Len(t, out, 10)
}
