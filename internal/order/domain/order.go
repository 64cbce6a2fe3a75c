package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors surfaced by the repository and usecase layers
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrUnknownStatus     = errors.New("unknown order status")
)

// Status is the order lifecycle status
type Status string

// Order statuses
const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// transitions is the allowed lifecycle graph. Delivered and Cancelled are
// terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseStatus converts a status string into a Status
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsTerminal reports whether no further transition is allowed
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is legal
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Notes returns the human-readable note for a status
func (s Status) Notes() string {
	switch s {
	case StatusPending:
		return "Order is being processed"
	case StatusConfirmed:
		return "Order has been confirmed and is being prepared"
	case StatusShipped:
		return "Order has been shipped"
	case StatusDelivered:
		return "Order has been delivered"
	case StatusCancelled:
		return "Order has been cancelled"
	default:
		return ""
	}
}

// Order represents a placed order. ItemName is a denormalized copy of the
// inventory item name, not a foreign key; orders survive item deletion.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ItemName   string    `json:"item_name" gorm:"not null;index"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice float64   `json:"total_price" gorm:"not null"`
	Status     Status    `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index"`
	OrderDate  time.Time `json:"order_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindAll(ctx context.Context, limit, offset int) ([]Order, error)
	FindByStatus(ctx context.Context, status Status, limit, offset int) ([]Order, error)
	FindRecent(ctx context.Context, count int) ([]Order, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
