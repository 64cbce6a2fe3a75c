package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors surfaced by the repository and usecase layers
var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrNameConflict      = errors.New("an item with this name already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// MaxNameLength bounds item names
const MaxNameLength = 100

// DefaultMinimumQuantity is applied when no reorder threshold is supplied
const DefaultMinimumQuantity = 10

// Item represents an inventory item
type Item struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Quantity        int       `json:"quantity" gorm:"not null;default:0"`
	Price           float64   `json:"price" gorm:"not null"`
	MinimumQuantity int       `json:"minimum_quantity" gorm:"not null;default:10"`
	LastRestocked   time.Time `json:"last_restocked"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the item has fallen to or below its reorder threshold
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.MinimumQuantity
}

// Value returns the stock value of the item
func (i *Item) Value() float64 {
	return float64(i.Quantity) * i.Price
}

// LowStockAlert is a derived projection of an item at or below its
// reorder threshold. It is computed at query time and never persisted.
type LowStockAlert struct {
	ItemID          uint      `json:"item_id"`
	ItemName        string    `json:"item_name"`
	CurrentQuantity int       `json:"current_quantity"`
	MinimumQuantity int       `json:"minimum_quantity"`
	Price           float64   `json:"price"`
	LastRestocked   time.Time `json:"last_restocked"`
}

// NewLowStockAlert projects an item into an alert
func NewLowStockAlert(item Item) LowStockAlert {
	return LowStockAlert{
		ItemID:          item.ID,
		ItemName:        item.Name,
		CurrentQuantity: item.Quantity,
		MinimumQuantity: item.MinimumQuantity,
		Price:           item.Price,
		LastRestocked:   item.LastRestocked,
	}
}

// ItemRepository defines the contract for inventory data access.
// ReserveStock must be a single conditional decrement so that concurrent
// reservations cannot jointly take more stock than exists.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id uint) (*Item, error)
	FindByName(ctx context.Context, name string) (*Item, error)
	FindAll(ctx context.Context, limit, offset int) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uint) error
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	ReserveStock(ctx context.Context, name string, quantity int) (bool, error)
	ReturnStock(ctx context.Context, name string, quantity int) error
	FindLowStock(ctx context.Context) ([]Item, error)
	TotalValue(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int64, error)
}
