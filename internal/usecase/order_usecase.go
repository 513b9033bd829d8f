// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is a single requested order line.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	SellerID          uuid.UUID        `json:"sellerId" validate:"required"`
	Items             []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddressID uuid.UUID        `json:"shippingAddressId" validate:"required"`
}

// UpdateOrderStatusInput carries the seller's status override.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase drives the order lifecycle: creation with stock reservation,
// and the status transitions with their authorization rules.
type OrderUsecase interface {
	// CreateOrder validates the request, captures unit prices, reserves stock
	// and persists the order in one transaction. Stock is only ever
	// decremented when the whole order goes through.
	CreateOrder(ctx context.Context, buyerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// PayOrder marks a pending order as paid. Buyer only.
	PayOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error)

	// CompleteOrder marks a paid, in-progress order as delivered.
	CompleteOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error)

	// ReturnOrder moves a completed order to RETURNED with a mandatory reason.
	ReturnOrder(ctx context.Context, orderID, requesterID uuid.UUID, reason string) (*entity.Order, error)

	// CancelOrder cancels an in-progress order and restocks its items. Buyer only.
	CancelOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus is the seller-facing override: it validates enum
	// membership only and bypasses the fine-grained transition rules.
	UpdateOrderStatus(ctx context.Context, orderID, requesterID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	GetUserOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)
}
