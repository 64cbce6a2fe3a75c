package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// CreateItemCommand represents the command to create a new inventory item
type CreateItemCommand struct {
	Name            string
	Quantity        int
	Price           float64
	MinimumQuantity *int
}

// CreateItemHandler handles item creation
type CreateItemHandler struct {
	repo domain.ItemRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.Item, error) {
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

	minimumQuantity := domain.DefaultMinimumQuantity
	if cmd.MinimumQuantity != nil {
		if *cmd.MinimumQuantity < 0 {
			return nil, fmt.Errorf("minimum quantity cannot be negative")
		}
		minimumQuantity = *cmd.MinimumQuantity
	}

	item := &domain.Item{
		Name:            cmd.Name,
		Quantity:        cmd.Quantity,
		Price:           cmd.Price,
		MinimumQuantity: minimumQuantity,
		LastRestocked:   time.Now().UTC(),
	}

	if err := h.repo.Create(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNameConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}
