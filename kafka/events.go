package kafka

import "time"

// OrderPlacedEvent is emitted after an order has been persisted
type OrderPlacedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    uint      `json:"order_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// LowStockEvent is emitted when a reservation pushes an item to or below
// its reorder threshold
type LowStockEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	ItemID          uint      `json:"item_id"`
	ItemName        string    `json:"item_name"`
	CurrentQuantity int       `json:"current_quantity"`
	MinimumQuantity int       `json:"minimum_quantity"`
	Timestamp       time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
	EventTypeLowStock    = "inventory.low_stock"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
	TopicLowStock    = "low-stock-alerts"
)
