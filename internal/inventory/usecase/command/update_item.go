package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// UpdateItemCommand represents the command to update an inventory item
type UpdateItemCommand struct {
	ID              uint
	Name            string
	Quantity        int
	Price           float64
	MinimumQuantity int
}

// UpdateItemHandler handles item updates
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid item id")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if len(cmd.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("item name must be at most %d characters", domain.MaxNameLength)
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.MinimumQuantity < 0 {
		return nil, fmt.Errorf("minimum quantity cannot be negative")
	}

	item, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	item.Name = cmd.Name
	item.Quantity = cmd.Quantity
	item.Price = cmd.Price
	item.MinimumQuantity = cmd.MinimumQuantity

	if err := h.repo.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNameConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}
