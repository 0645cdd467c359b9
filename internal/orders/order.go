// Package orders persists and manages submitted storefront orders.
package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/leonnmarcoo/Apple-store/internal/money"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is one purchased line, with the price snapshot the buyer saw.
type OrderItem struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
	Image     string       `json:"image"`
}

type Order struct {
	ID        uuid.UUID    `json:"_id"`
	UserID    string       `json:"userId,omitempty"` // empty for guest orders
	Items     []OrderItem  `json:"products"`
	Total     money.Amount `json:"total"`
	Status    OrderStatus  `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
