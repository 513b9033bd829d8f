package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_RecalculateRating(t *testing.T) {
	product := &Product{ID: uuid.New()}

	product.RecalculateRating()
	assert.Zero(t, product.Rating)

	product.Reviews = []Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 2},
	}
	product.RecalculateRating()
	assert.InDelta(t, 11.0/3.0, product.Rating, 0.0001)
}

func TestOrderItem_Subtotal(t *testing.T) {
	item := OrderItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("19.99"),
	}

	assert.True(t, decimal.RequireFromString("59.97").Equal(item.Subtotal()))
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryElectronics.IsValid())
	assert.False(t, Category("antiques").IsValid())
}
