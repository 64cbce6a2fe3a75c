// Package client provides the order module's view of the inventory
// service. The order workflow never touches inventory storage directly;
// every stock mutation goes through these inventory usecase handlers.
package client

import (
	"context"
	"errors"

	invdomain "github.com/cratespace/cratespace/internal/inventory/domain"
	invcommand "github.com/cratespace/cratespace/internal/inventory/usecase/command"
	invquery "github.com/cratespace/cratespace/internal/inventory/usecase/query"
)

// ErrItemNotFound mirrors the inventory not-found condition for callers
// that should not import the inventory domain package
var ErrItemNotFound = errors.New("item not found")

// ItemInfo carries the item fields the order workflow needs
type ItemInfo struct {
	ID              uint
	Name            string
	Quantity        int
	Price           float64
	MinimumQuantity int
}

// InventoryClient is the in-process client for the inventory service
type InventoryClient struct {
	availability *invquery.CheckAvailabilityHandler
	getItem      *invquery.GetItemHandler
	reserve      *invcommand.ReserveStockHandler
	returnStock  *invcommand.ReturnStockHandler
}

// NewInventoryClient creates a new inventory client
func NewInventoryClient(
	availability *invquery.CheckAvailabilityHandler,
	getItem *invquery.GetItemHandler,
	reserve *invcommand.ReserveStockHandler,
	returnStock *invcommand.ReturnStockHandler,
) *InventoryClient {
	return &InventoryClient{
		availability: availability,
		getItem:      getItem,
		reserve:      reserve,
		returnStock:  returnStock,
	}
}

// CheckAvailability reports whether the named item can satisfy the quantity
func (c *InventoryClient) CheckAvailability(ctx context.Context, itemName string, quantity int) (bool, error) {
	return c.availability.Handle(ctx, invquery.CheckAvailabilityQuery{
		ItemName: itemName,
		Quantity: quantity,
	})
}

// ItemByName fetches the named item
func (c *InventoryClient) ItemByName(ctx context.Context, itemName string) (*ItemInfo, error) {
	item, err := c.getItem.HandleByName(ctx, invquery.GetItemByNameQuery{Name: itemName})
	if errors.Is(err, invdomain.ErrItemNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ItemInfo{
		ID:              item.ID,
		Name:            item.Name,
		Quantity:        item.Quantity,
		Price:           item.Price,
		MinimumQuantity: item.MinimumQuantity,
	}, nil
}

// ReserveStock reserves quantity units of the named item
func (c *InventoryClient) ReserveStock(ctx context.Context, itemName string, quantity int) (bool, error) {
	return c.reserve.Handle(ctx, invcommand.ReserveStockCommand{
		ItemName: itemName,
		Quantity: quantity,
	})
}

// ReturnStock returns quantity units of the named item to stock
func (c *InventoryClient) ReturnStock(ctx context.Context, itemName string, quantity int) error {
	return c.returnStock.Handle(ctx, invcommand.ReturnStockCommand{
		ItemName: itemName,
		Quantity: quantity,
	})
}
