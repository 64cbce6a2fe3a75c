package query

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/order/domain"
)

// RecentOrdersQuery represents the query for the most recent orders
type RecentOrdersQuery struct {
	Count int
}

// RecentOrdersHandler handles recent order queries
type RecentOrdersHandler struct {
	repo domain.OrderRepository
}

// NewRecentOrdersHandler creates a new recent orders handler
func NewRecentOrdersHandler(repo domain.OrderRepository) *RecentOrdersHandler {
	return &RecentOrdersHandler{repo: repo}
}

// Handle executes the recent orders query
func (h *RecentOrdersHandler) Handle(ctx context.Context, query RecentOrdersQuery) ([]domain.Order, error) {
	count := query.Count
	if count <= 0 {
		count = 5
	}
	orders, err := h.repo.FindRecent(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	return orders, nil
}

// PendingCountQuery represents the query for the number of pending orders
type PendingCountQuery struct{}

// PendingCountHandler handles pending order counting
type PendingCountHandler struct {
	repo domain.OrderRepository
}

// NewPendingCountHandler creates a new pending count handler
func NewPendingCountHandler(repo domain.OrderRepository) *PendingCountHandler {
	return &PendingCountHandler{repo: repo}
}

// Handle executes the pending count query
func (h *PendingCountHandler) Handle(ctx context.Context, query PendingCountQuery) (int64, error) {
	count, err := h.repo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending orders: %w", err)
	}
	return count, nil
}
