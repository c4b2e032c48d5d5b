package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storeapi/internal/models"
	"storeapi/internal/repo"
	"storeapi/internal/transport"
)

type ProductService struct {
	Store *repo.Store
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price == nil {
		return nil, fmt.Errorf("%w: price required", ErrValidation)
	}
	if req.Quantity == nil {
		return nil, fmt.Errorf("%w: quantity required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if *req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	existing, err := s.Store.Products.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: product %q already exists", ErrConflict, req.Name)
	}

	product := &models.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}
	if err := s.Store.Products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Store.Products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Store.Products.ListProducts(ctx, offset, limit)
}
