package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeapi/internal/transport"
)

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intp(v int) *int {
	return &v
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "empty name", req: transport.CreateProductRequest{Name: "", Price: decp("9.99"), Quantity: intp(10)}},
		{name: "missing price", req: transport.CreateProductRequest{Name: "Widget", Quantity: intp(10)}},
		{name: "missing quantity", req: transport.CreateProductRequest{Name: "Widget", Price: decp("9.99")}},
		{name: "negative price", req: transport.CreateProductRequest{Name: "Widget", Price: decp("-1"), Quantity: intp(10)}},
		{name: "negative quantity", req: transport.CreateProductRequest{Name: "Widget", Price: decp("9.99"), Quantity: intp(-1)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &ProductService{Store: newTestStore(t)}
			product, err := svc.CreateProduct(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, product)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductService_CreateProduct_ZeroValuesAllowed(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Store: newTestStore(t)}

	product, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:     "Freebie",
		Price:    decp("0"),
		Quantity: intp(0),
	})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.True(t, product.Price.IsZero())
	assert.Equal(t, 0, product.Quantity)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Store: newTestStore(t)}

	product, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:     "Widget",
		Price:    decp("9.99"),
		Quantity: intp(10),
	})
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 10, product.Quantity)

	stored, err := svc.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, stored.ID)
	assert.Equal(t, "Widget", stored.Name)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 10, stored.Quantity)
}

func TestProductService_CreateProduct_DuplicateName(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Widget", Price: decp("9.99"), Quantity: intp(10)})
	require.NoError(t, err)

	// same name with different price and quantity still conflicts
	product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Widget", Price: decp("1.00"), Quantity: intp(1)})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Store: newTestStore(t)}

	product, err := svc.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_ListProducts(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Store: newTestStore(t)}
	ctx := context.Background()

	for _, name := range []string{"Apple", "Banana", "Cherry"} {
		_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: name, Price: decp("1.50"), Quantity: intp(5)})
		require.NoError(t, err)
	}

	total, items, err := svc.ListProducts(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, "Banana", items[1].Name)
}
