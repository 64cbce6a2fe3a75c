package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItemIsLowStock(t *testing.T) {
	item := Item{Quantity: 21, MinimumQuantity: 20}
	assert.False(t, item.IsLowStock())

	// The threshold itself counts as low stock
	item.Quantity = 20
	assert.True(t, item.IsLowStock())

	item.Quantity = 0
	assert.True(t, item.IsLowStock())
}

func TestItemValue(t *testing.T) {
	item := Item{Quantity: 100, Price: 19.99}
	assert.InDelta(t, 1999.0, item.Value(), 0.001)

	empty := Item{Quantity: 0, Price: 49.99}
	assert.Zero(t, empty.Value())
}

func TestNewLowStockAlert(t *testing.T) {
	restocked := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	item := Item{
		ID:              3,
		Name:            "Gadget X",
		Quantity:        12,
		Price:           49.99,
		MinimumQuantity: 15,
		LastRestocked:   restocked,
	}

	alert := NewLowStockAlert(item)
	assert.Equal(t, uint(3), alert.ItemID)
	assert.Equal(t, "Gadget X", alert.ItemName)
	assert.Equal(t, 12, alert.CurrentQuantity)
	assert.Equal(t, 15, alert.MinimumQuantity)
	assert.InDelta(t, 49.99, alert.Price, 0.001)
	assert.Equal(t, restocked, alert.LastRestocked)
}
