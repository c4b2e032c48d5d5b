package repo

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the entity repositories over one gorm handle so a service can
// run several of them inside a single database transaction.
type Store struct {
	DB        *gorm.DB
	Customers *CustomerRepo
	Products  *ProductRepo
	Orders    *OrderRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		DB:        db,
		Customers: &CustomerRepo{DB: db},
		Products:  &ProductRepo{DB: db},
		Orders:    &OrderRepo{DB: db},
	}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
