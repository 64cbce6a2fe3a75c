package command

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an inventory item.
// Deleting an item has no effect on historical orders, which reference the
// item by denormalized name.
type DeleteItemCommand struct {
	ID uint
}

// DeleteItemHandler handles item deletion
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid item id")
	}
	return h.repo.Delete(ctx, cmd.ID)
}
