// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to create a product listing.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Images      []string        `json:"images"`
}

// UpdateProductInput is a partial patch; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Brand       *string          `json:"brand"`
	Images      *[]string        `json:"images"`
}

// AddReviewInput defines the data required to review a product.
type AddReviewInput struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// CatalogUsecase defines the interface for product catalog operations.
// Mutations require the requesting user's identity and enforce ownership.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id, requesterID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id, requesterID uuid.UUID) error
	AddReview(ctx context.Context, productID, reviewerID uuid.UUID, input *AddReviewInput) (*entity.Product, error)
}
