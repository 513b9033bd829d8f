package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"in progress to completed", OrderStatusInProgress, OrderStatusCompleted, true},
		{"in progress to canceled", OrderStatusInProgress, OrderStatusCanceled, true},
		{"in progress to returned", OrderStatusInProgress, OrderStatusReturned, false},
		{"completed to returned", OrderStatusCompleted, OrderStatusReturned, true},
		{"completed to canceled", OrderStatusCompleted, OrderStatusCanceled, false},
		{"completed to in progress", OrderStatusCompleted, OrderStatusInProgress, false},
		{"returned is terminal", OrderStatusReturned, OrderStatusInProgress, false},
		{"canceled is terminal", OrderStatusCanceled, OrderStatusCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusInProgress.IsTerminal())
	assert.False(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusReturned.IsTerminal())
	assert.True(t, OrderStatusCanceled.IsTerminal())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusInProgress.IsValid())
	assert.True(t, OrderStatusReturned.IsValid())
	assert.False(t, OrderStatus("SHIPPED").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, PaymentStatusPending.IsValid())
	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusFailed.IsValid())
	assert.False(t, PaymentStatus("REFUNDED").IsValid())
}
