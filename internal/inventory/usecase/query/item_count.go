package query

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// ItemCountQuery represents the query for the total number of items
type ItemCountQuery struct{}

// ItemCountHandler handles item count queries
type ItemCountHandler struct {
	repo domain.ItemRepository
}

// NewItemCountHandler creates a new item count handler
func NewItemCountHandler(repo domain.ItemRepository) *ItemCountHandler {
	return &ItemCountHandler{repo: repo}
}

// Handle executes the item count query. The count is taken from the
// store, not from a paginated page, so it is exact regardless of how
// many items exist.
func (h *ItemCountHandler) Handle(ctx context.Context, query ItemCountQuery) (int64, error) {
	count, err := h.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
