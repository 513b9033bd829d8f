// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxProductImages limits how many image URLs a single listing may carry.
const MaxProductImages = 5

// Product is a listing created and owned by a seller.
// Stock is the available quantity counter; it is only mutated by the order
// workflow (conditional decrement on creation, restock on cancellation).
type Product struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	OwnerID     uuid.UUID       // The ID of the user that owns this listing. Mutations require this identity.
	Name        string          // Display name of the product.
	Price       decimal.Decimal // Unit price, always positive. Captured onto order items at order time.
	Stock       int             // Available quantity, never negative. Defaults to 0.
	Category    Category        // One of the fixed marketplace categories.
	Description string          // Free-text description.
	Brand       string          // Manufacturer or brand name.
	Images      []string        // Image URLs, at most MaxProductImages entries.
	Rating      float64         // Mean of all review ratings, 0 when unreviewed.
	Reviews     []Review        // Embedded review list.
	CreatedAt   time.Time       // Timestamp of when this listing was created.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}

// Review is a single buyer review embedded in a product.
type Review struct {
	ID         uuid.UUID // The unique ID for this review record.
	ProductID  uuid.UUID // Links the review to its product.
	ReviewerID uuid.UUID // The user who wrote the review.
	Comment    string    // Free-text comment.
	Rating     int       // Rating from 1 to 5.
	CreatedAt  time.Time // Timestamp of when the review was written.
}

// RecalculateRating recomputes the product rating as the mean of its reviews.
func (p *Product) RecalculateRating() {
	if len(p.Reviews) == 0 {
		p.Rating = 0

		return
	}

	sum := 0
	for _, review := range p.Reviews {
		sum += review.Rating
	}
	p.Rating = float64(sum) / float64(len(p.Reviews))
}
