// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order, including its items, by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByBuyer retrieves all orders placed by a user, in insertion order.
	FindOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrder updates the mutable fields of an order (status, payment
	// status, delivery timestamp, return reason).
	UpdateOrder(ctx context.Context, order *entity.Order) error
}
