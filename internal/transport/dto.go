package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Price and Quantity are pointers so a missing field can be told apart from a
// legitimate zero value.
type CreateProductRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderProductRequest struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID uuid.UUID             `json:"customer_id"`
	Products   []OrderProductRequest `json:"products"`
}
