package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cratespace/cratespace/internal/order/domain"
)

// UpdateStatusCommand represents the command to update an order's status
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateStatusHandler handles status updates. Transitions are validated
// against the lifecycle table, so an order can never move backwards or
// out of a terminal status.
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("invalid order id")
	}

	next, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return err
	}

	order, err := h.repo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := h.repo.UpdateStatus(ctx, cmd.OrderID, next); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}
