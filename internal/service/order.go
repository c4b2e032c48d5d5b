package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"storeapi/internal/models"
	"storeapi/internal/repo"
	"storeapi/internal/transport"
)

type OrderService struct {
	Store *repo.Store
}

func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.CustomerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer_id required", ErrValidation)
	}
	if len(req.Products) == 0 {
		return nil, fmt.Errorf("%w: products required", ErrValidation)
	}

	seen := make(map[uuid.UUID]struct{}, len(req.Products))
	ids := make([]uuid.UUID, 0, len(req.Products))
	for i := range req.Products {
		rp := req.Products[i]
		if rp.ID == uuid.Nil {
			return nil, fmt.Errorf("%w: product id required", ErrValidation)
		}
		if rp.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if _, dup := seen[rp.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product %s", ErrValidation, rp.ID)
		}
		seen[rp.ID] = struct{}{}
		ids = append(ids, rp.ID)
	}

	customer, err := s.Store.Customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s not found", ErrValidation, req.CustomerID)
	}

	var order *models.Order
	err = s.Store.Transaction(ctx, func(tx *repo.Store) error {
		// The lock on the product rows holds until commit, so the stock
		// check and the decrement below cannot race with a concurrent order.
		products, err := tx.Products.FindAllByIDForUpdate(ctx, ids)
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		var missing []string
		for _, rp := range req.Products {
			if _, ok := byID[rp.ID]; !ok {
				missing = append(missing, rp.ID.String())
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: some products could not be found: %s", ErrValidation, strings.Join(missing, ", "))
		}

		lines := make([]models.OrderProduct, 0, len(req.Products))
		updates := make([]repo.QuantityUpdate, 0, len(req.Products))
		for _, rp := range req.Products {
			p := byID[rp.ID]
			if rp.Quantity > p.Quantity {
				return fmt.Errorf("%w: insufficient stock for product %s", ErrValidation, p.ID)
			}

			productID := p.ID
			lines = append(lines, models.OrderProduct{
				ProductID: &productID,
				Price:     p.Price,
				Quantity:  rp.Quantity,
			})
			updates = append(updates, repo.QuantityUpdate{
				ID:       p.ID,
				Quantity: p.Quantity - rp.Quantity,
			})
		}

		o := &models.Order{
			CustomerID: customer.ID,
			Products:   lines,
		}
		if err := tx.Orders.Create(ctx, o); err != nil {
			return err
		}
		if _, err := tx.Products.UpdateQuantity(ctx, updates); err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Customer = *customer
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Store.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]models.Order, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer_id required", ErrValidation)
	}
	return s.Store.Orders.ListByCustomer(ctx, customerID, offset, limit)
}
