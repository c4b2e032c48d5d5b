package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storeapi/internal/models"
	"storeapi/internal/repo"
	"storeapi/internal/transport"
)

type CustomerService struct {
	Store *repo.Store
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}

	existing, err := s.Store.Customers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: customer with email %q already exists", ErrConflict, req.Email)
	}

	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.Store.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.Store.Customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	return customer, nil
}
