package query

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders, optionally
// filtered by status
type ListOrdersQuery struct {
	Status string
	Limit  int
	Offset int
}

// ListOrdersHandler handles order listing
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]domain.Order, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	if query.Status != "" {
		status, err := domain.ParseStatus(query.Status)
		if err != nil {
			return nil, err
		}
		orders, err := h.repo.FindByStatus(ctx, status, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}
		return orders, nil
	}

	orders, err := h.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
