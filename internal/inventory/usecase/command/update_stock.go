package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// UpdateStockCommand represents the command to set an item's absolute stock
type UpdateStockCommand struct {
	ItemID   uint
	Quantity int
}

// UpdateStockHandler handles stock updates
type UpdateStockHandler struct {
	repo domain.ItemRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.ItemRepository) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) error {
	if cmd.ItemID == 0 {
		return fmt.Errorf("invalid item id")
	}
	if cmd.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}

	if err := h.repo.UpdateQuantity(ctx, cmd.ItemID, cmd.Quantity); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return nil
}
