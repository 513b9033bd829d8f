// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusInProgress is the initial state of every order.
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	// OrderStatusCompleted marks a delivered order. Still returnable.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusReturned is terminal. Reachable only from COMPLETED.
	OrderStatusReturned OrderStatus = "RETURNED"
	// OrderStatusCanceled is terminal. Reachable only from IN_PROGRESS.
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusReturned, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from this state.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusReturned || s == OrderStatusCanceled
}

// CanTransitionTo reports whether the status may move to the target state
// under the fine-grained lifecycle rules. The seller override path
// deliberately bypasses this check.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusInProgress:
		return target == OrderStatusCompleted || target == OrderStatusCanceled
	case OrderStatusCompleted:
		return target == OrderStatusReturned
	default:
		return false
	}
}

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	// PaymentStatusPending is the initial payment state.
	PaymentStatusPending PaymentStatus = "PENDING"
	// PaymentStatusPaid marks a successfully paid order.
	PaymentStatusPaid PaymentStatus = "PAID"
	// PaymentStatusFailed marks a failed payment attempt.
	PaymentStatusFailed PaymentStatus = "FAILED"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	default:
		return false
	}
}
