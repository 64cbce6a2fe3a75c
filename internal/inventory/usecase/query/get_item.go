package query

import (
	"context"
	"fmt"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// GetItemQuery represents the query to get an item by id
type GetItemQuery struct {
	ID uint
}

// GetItemByNameQuery represents the query to get an item by name
type GetItemByNameQuery struct {
	Name string
}

// GetItemHandler handles item lookups
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, query GetItemQuery) (*domain.Item, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("invalid item id")
	}
	return h.repo.FindByID(ctx, query.ID)
}

// HandleByName executes the get item by name query
func (h *GetItemHandler) HandleByName(ctx context.Context, query GetItemByNameQuery) (*domain.Item, error) {
	if query.Name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	return h.repo.FindByName(ctx, query.Name)
}
