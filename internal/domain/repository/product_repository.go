// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional decrement cannot
	// be applied because the available stock is lower than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product listing.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product, including its reviews, by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByOwner retrieves all products owned by a specific user.
	FindProductsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	// ListProducts retrieves all products in insertion order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// UpdateProduct updates an existing product record.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically reduces the stock counter, but only when the
	// available stock covers the requested amount. Returns ErrInsufficientStock
	// when it does not; the row is left untouched in that case.
	DecrementStock(ctx context.Context, id uuid.UUID, amount int) error

	// IncrementStock returns previously reserved units to the stock counter.
	// Used when an order is canceled.
	IncrementStock(ctx context.Context, id uuid.UUID, amount int) error

	// AddReview appends a review to a product and persists the recomputed rating.
	AddReview(ctx context.Context, review *entity.Review, newRating float64) error
}
