// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order records a purchase from one buyer against one seller.
// Item unit prices are captured at creation time so later price changes on the
// product never retroactively change an existing order; TotalAmount must equal
// the sum of UnitPrice × Quantity across all items.
type Order struct {
	ID                uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	BuyerID           uuid.UUID       // The user who placed the order.
	SellerID          uuid.UUID       // The user whose products are being bought.
	Items             []OrderItem     // At least one item.
	TotalAmount       decimal.Decimal // Sum of UnitPrice × Quantity across Items, fixed at creation.
	Status            OrderStatus     // Lifecycle status, starts at OrderStatusInProgress.
	PaymentStatus     PaymentStatus   // Payment status, starts at PaymentStatusPending.
	ShippingAddressID uuid.UUID       // The address the order ships to.
	ReturnReason      string          // Free text, set only on transition to RETURNED.
	OrderedAt         time.Time       // Set at creation.
	DeliveredAt       *time.Time      // Set when the order is completed.
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ID        uuid.UUID       // The unique ID for this order line.
	OrderID   uuid.UUID       // Links the line to its order.
	ProductID uuid.UUID       // The product being bought.
	Quantity  int             // Units bought, always positive.
	UnitPrice decimal.Decimal // The product price at order time.
}

// Subtotal returns UnitPrice × Quantity for this line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
