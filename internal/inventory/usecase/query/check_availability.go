package query

import (
	"context"
	"errors"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// CheckAvailabilityQuery asks whether an item can satisfy a requested quantity
type CheckAvailabilityQuery struct {
	ItemName string
	Quantity int
}

// CheckAvailabilityHandler handles availability checks
type CheckAvailabilityHandler struct {
	repo domain.ItemRepository
}

// NewCheckAvailabilityHandler creates a new check availability handler
func NewCheckAvailabilityHandler(repo domain.ItemRepository) *CheckAvailabilityHandler {
	return &CheckAvailabilityHandler{repo: repo}
}

// Handle executes the availability check. A missing item is simply
// unavailable, not an error.
func (h *CheckAvailabilityHandler) Handle(ctx context.Context, query CheckAvailabilityQuery) (bool, error) {
	item, err := h.repo.FindByName(ctx, query.ItemName)
	if errors.Is(err, domain.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return item.Quantity >= query.Quantity, nil
}
