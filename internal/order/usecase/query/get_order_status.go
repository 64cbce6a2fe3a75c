package query

import (
	"context"
	"fmt"
	"time"

	"github.com/cratespace/cratespace/internal/order/domain"
)

// GetOrderStatusQuery represents the query for an order's status
type GetOrderStatusQuery struct {
	OrderID uint
}

// OrderStatusResult bundles the status of an order with a human-readable
// note derived from the status
type OrderStatusResult struct {
	OrderID     uint          `json:"order_id"`
	Status      domain.Status `json:"status"`
	ItemName    string        `json:"item_name"`
	Quantity    int           `json:"quantity"`
	TotalPrice  float64       `json:"total_price"`
	LastUpdated time.Time     `json:"last_updated"`
	Notes       string        `json:"notes"`
}

// GetOrderStatusHandler handles order status queries
type GetOrderStatusHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderStatusHandler creates a new get order status handler
func NewGetOrderStatusHandler(repo domain.OrderRepository) *GetOrderStatusHandler {
	return &GetOrderStatusHandler{repo: repo}
}

// Handle executes the order status query
func (h *GetOrderStatusHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (*OrderStatusResult, error) {
	if query.OrderID == 0 {
		return nil, fmt.Errorf("invalid order id")
	}

	order, err := h.repo.FindByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	return &OrderStatusResult{
		OrderID:     order.ID,
		Status:      order.Status,
		ItemName:    order.ItemName,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalPrice,
		LastUpdated: order.OrderDate,
		Notes:       order.Status.Notes(),
	}, nil
}
