package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cratespace/cratespace/internal/order/client"
	"github.com/cratespace/cratespace/internal/order/domain"
	"github.com/cratespace/cratespace/kafka"
	"github.com/cratespace/cratespace/pkg/logger"
)

// Inventory is the order workflow's contract with the inventory service
type Inventory interface {
	CheckAvailability(ctx context.Context, itemName string, quantity int) (bool, error)
	ItemByName(ctx context.Context, itemName string) (*client.ItemInfo, error)
	ReserveStock(ctx context.Context, itemName string, quantity int) (bool, error)
	ReturnStock(ctx context.Context, itemName string, quantity int) error
}

// EventPublisher publishes order lifecycle events. Publishing is
// best-effort; failures never fail the order.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
	PublishLowStock(ctx context.Context, event kafka.LowStockEvent) error
}

// PlaceOrderCommand represents the command to place an order
type PlaceOrderCommand struct {
	ItemName string
	Quantity int
}

// OrderResult is the outcome of an order placement
type OrderResult struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	OrderID    uint          `json:"order_id,omitempty"`
	ItemName   string        `json:"item_name,omitempty"`
	Quantity   int           `json:"quantity,omitempty"`
	TotalPrice float64       `json:"total_price,omitempty"`
	Status     domain.Status `json:"status,omitempty"`
	OrderDate  time.Time     `json:"order_date,omitempty"`
}

// PlaceOrderHandler orchestrates the order placement workflow
type PlaceOrderHandler struct {
	repo      domain.OrderRepository
	inventory Inventory
	events    EventPublisher
}

// NewPlaceOrderHandler creates a new place order handler. events may be
// nil when no broker is configured.
func NewPlaceOrderHandler(repo domain.OrderRepository, inventory Inventory, events EventPublisher) *PlaceOrderHandler {
	return &PlaceOrderHandler{repo: repo, inventory: inventory, events: events}
}

// Handle executes the order placement workflow: verify availability, price
// the order, reserve stock atomically, persist the order. When persisting
// fails after a successful reservation, the reserved stock is returned.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*OrderResult, error) {
	if cmd.Quantity < 1 {
		return failure("Quantity must be at least 1"), nil
	}

	available, err := h.inventory.CheckAvailability(ctx, cmd.ItemName, cmd.Quantity)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		return failure(fmt.Sprintf("Insufficient inventory for item: %s", cmd.ItemName)), nil
	}

	// Availability implies existence, so this lookup should not miss;
	// the not-found branch is kept as a guard.
	item, err := h.inventory.ItemByName(ctx, cmd.ItemName)
	if errors.Is(err, client.ErrItemNotFound) {
		return failure(fmt.Sprintf("Item not found: %s", cmd.ItemName)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("item lookup failed: %w", err)
	}

	totalPrice := float64(cmd.Quantity) * item.Price

	reserved, err := h.inventory.ReserveStock(ctx, cmd.ItemName, cmd.Quantity)
	if err != nil {
		return nil, fmt.Errorf("stock reservation failed: %w", err)
	}
	if !reserved {
		return failure("Failed to reserve stock for order"), nil
	}

	order := &domain.Order{
		ItemName:   cmd.ItemName,
		Quantity:   cmd.Quantity,
		TotalPrice: totalPrice,
		Status:     domain.StatusPending,
		OrderDate:  time.Now().UTC(),
	}

	if err := h.repo.Create(ctx, order); err != nil {
		// Undo the reservation so stock is not stranded
		if returnErr := h.inventory.ReturnStock(ctx, cmd.ItemName, cmd.Quantity); returnErr != nil {
			logger.Error(ctx).
				Err(returnErr).
				Str("item_name", cmd.ItemName).
				Int("quantity", cmd.Quantity).
				Msg("Failed to return reserved stock after order persistence failure")
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	h.publishEvents(ctx, order, item)

	return &OrderResult{
		Success:    true,
		Message:    "Order placed successfully",
		OrderID:    order.ID,
		ItemName:   order.ItemName,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		OrderDate:  order.OrderDate,
	}, nil
}

func (h *PlaceOrderHandler) publishEvents(ctx context.Context, order *domain.Order, item *client.ItemInfo) {
	if h.events == nil {
		return
	}

	if err := h.events.PublishOrderPlaced(ctx, kafka.OrderPlacedEvent{
		OrderID:    order.ID,
		ItemName:   order.ItemName,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
	}); err != nil {
		logger.Warn(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order placed event")
	}

	remaining := item.Quantity - order.Quantity
	if remaining <= item.MinimumQuantity {
		if err := h.events.PublishLowStock(ctx, kafka.LowStockEvent{
			ItemID:          item.ID,
			ItemName:        item.Name,
			CurrentQuantity: remaining,
			MinimumQuantity: item.MinimumQuantity,
		}); err != nil {
			logger.Warn(ctx).Err(err).Str("item_name", item.Name).Msg("Failed to publish low stock event")
		}
	}
}

func failure(message string) *OrderResult {
	return &OrderResult{Success: false, Message: message}
}
