package command

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// ReserveStockCommand represents the command to reserve stock for an order
type ReserveStockCommand struct {
	ItemName string
	Quantity int
}

// ReserveStockHandler handles stock reservation. The reservation is a
// single conditional decrement in the store; it succeeds only when the
// item exists and holds enough stock.
type ReserveStockHandler struct {
	repo domain.ItemRepository
}

// NewReserveStockHandler creates a new reserve stock handler
func NewReserveStockHandler(repo domain.ItemRepository) *ReserveStockHandler {
	return &ReserveStockHandler{repo: repo}
}

// Handle executes the reserve stock command. It returns false, not an
// error, when the item is missing or short on stock.
func (h *ReserveStockHandler) Handle(ctx context.Context, cmd ReserveStockCommand) (bool, error) {
	if cmd.ItemName == "" {
		return false, fmt.Errorf("item name is required")
	}
	if cmd.Quantity < 1 {
		return false, fmt.Errorf("quantity must be at least 1")
	}
	return h.repo.ReserveStock(ctx, cmd.ItemName, cmd.Quantity)
}

// ReturnStockCommand represents the command to return reserved stock,
// used by order cancellation and placement compensation
type ReturnStockCommand struct {
	ItemName string
	Quantity int
}

// ReturnStockHandler handles stock returns
type ReturnStockHandler struct {
	repo domain.ItemRepository
}

// NewReturnStockHandler creates a new return stock handler
func NewReturnStockHandler(repo domain.ItemRepository) *ReturnStockHandler {
	return &ReturnStockHandler{repo: repo}
}

// Handle executes the return stock command
func (h *ReturnStockHandler) Handle(ctx context.Context, cmd ReturnStockCommand) error {
	if cmd.ItemName == "" {
		return fmt.Errorf("item name is required")
	}
	if cmd.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return h.repo.ReturnStock(ctx, cmd.ItemName, cmd.Quantity)
}
