package query

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// InventoryValueQuery represents the query for the total inventory value
type InventoryValueQuery struct{}

// InventoryValueHandler handles total inventory value queries
type InventoryValueHandler struct {
	repo domain.ItemRepository
}

// NewInventoryValueHandler creates a new inventory value handler
func NewInventoryValueHandler(repo domain.ItemRepository) *InventoryValueHandler {
	return &InventoryValueHandler{repo: repo}
}

// Handle executes the inventory value query, the sum of quantity times
// price over all items
func (h *InventoryValueHandler) Handle(ctx context.Context, query InventoryValueQuery) (float64, error) {
	total, err := h.repo.TotalValue(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to compute inventory value: %w", err)
	}
	return total, nil
}
