package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Name      string    `gorm:"not null"              json:"name"`
	Email     string    `gorm:"uniqueIndex;not null"  json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"       json:"id"`
	Name      string          `gorm:"uniqueIndex;not null"       json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"price"`
	Quantity  int             `gorm:"not null;check:quantity>=0" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Order struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"     json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer       `json:"customer"`
	Products   []OrderProduct `gorm:"foreignKey:OrderID"       json:"order_products"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderProduct is one line of an order. Price is copied from the product at
// purchase time so later price changes do not affect past orders. The foreign
// keys are nullable: deleting a product keeps the history row.
type OrderProduct struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"       json:"id"`
	OrderID   *uuid.UUID      `gorm:"type:uuid;index"            json:"order_id"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index"            json:"product_id"`
	Price     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"price"`
	Quantity  int             `gorm:"not null;check:quantity>0"  json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (op *OrderProduct) BeforeCreate(tx *gorm.DB) error {
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	return nil
}

func (OrderProduct) TableName() string { return "orders_products" }
