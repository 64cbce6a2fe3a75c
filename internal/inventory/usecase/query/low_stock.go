package query

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// LowStockAlertsQuery represents the query for items at or below their
// reorder threshold
type LowStockAlertsQuery struct{}

// LowStockAlertsHandler handles low stock alert queries
type LowStockAlertsHandler struct {
	repo domain.ItemRepository
}

// NewLowStockAlertsHandler creates a new low stock alerts handler
func NewLowStockAlertsHandler(repo domain.ItemRepository) *LowStockAlertsHandler {
	return &LowStockAlertsHandler{repo: repo}
}

// Handle executes the low stock alerts query. Alerts are computed from the
// store at query time, never cached.
func (h *LowStockAlertsHandler) Handle(ctx context.Context, query LowStockAlertsQuery) ([]domain.LowStockAlert, error) {
	items, err := h.repo.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find low stock items: %w", err)
	}

	alerts := make([]domain.LowStockAlert, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, domain.NewLowStockAlert(item))
	}
	return alerts, nil
}
