package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cratespace/cratespace/internal/order/domain"
	"github.com/cratespace/cratespace/pkg/logger"
)

// CancelOrderCommand represents the command to cancel an order
type CancelOrderCommand struct {
	OrderID uint
}

// CancelOrderHandler handles order cancellation
type CancelOrderHandler struct {
	repo      domain.OrderRepository
	inventory Inventory
}

// NewCancelOrderHandler creates a new cancel order handler
func NewCancelOrderHandler(repo domain.OrderRepository, inventory Inventory) *CancelOrderHandler {
	return &CancelOrderHandler{repo: repo, inventory: inventory}
}

// Handle executes the cancellation. It returns false when the order does
// not exist or is already cancelled. Undelivered orders return their
// reserved quantity to stock; if the status write then fails, the return
// is undone so inventory stays consistent.
func (h *CancelOrderHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (bool, error) {
	order, err := h.repo.FindByID(ctx, cmd.OrderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("order lookup failed: %w", err)
	}

	// Delivered and Cancelled are terminal
	if !order.Status.CanTransitionTo(domain.StatusCancelled) {
		return false, nil
	}

	if err := h.inventory.ReturnStock(ctx, order.ItemName, order.Quantity); err != nil {
		return false, fmt.Errorf("failed to return stock for order %d: %w", cmd.OrderID, err)
	}

	if err := h.repo.UpdateStatus(ctx, cmd.OrderID, domain.StatusCancelled); err != nil {
		// Undo the stock return so the reservation still holds
		if reserved, reserveErr := h.inventory.ReserveStock(ctx, order.ItemName, order.Quantity); reserveErr != nil || !reserved {
			logger.Error(ctx).
				Err(reserveErr).
				Uint("order_id", cmd.OrderID).
				Str("item_name", order.ItemName).
				Msg("Failed to re-reserve stock after cancellation failure")
		}
		return false, fmt.Errorf("failed to cancel order %d: %w", cmd.OrderID, err)
	}

	logger.Info(ctx).
		Uint("order_id", cmd.OrderID).
		Str("item_name", order.ItemName).
		Int("quantity", order.Quantity).
		Msg("Order cancelled")

	return true, nil
}
