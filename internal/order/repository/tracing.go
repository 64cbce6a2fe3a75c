package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/cratespace/cratespace/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// OrderRepositoryWithTracing decorates an OrderRepository with tracing.
// The lifecycle methods are overridden to record spans; the list queries
// are inherited untraced.
type OrderRepositoryWithTracing struct {
	domain.OrderRepository
}

// NewOrderRepositoryWithTracing wraps an existing repository with tracing
func NewOrderRepositoryWithTracing(next domain.OrderRepository) *OrderRepositoryWithTracing {
	return &OrderRepositoryWithTracing{OrderRepository: next}
}

// NewGormOrderRepositoryWithTracing creates a gorm-backed repository
// wrapped with tracing
func NewGormOrderRepositoryWithTracing(db *gorm.DB) *OrderRepositoryWithTracing {
	return NewOrderRepositoryWithTracing(NewGormOrderRepository(db))
}

// Create records a span around order creation
func (r *OrderRepositoryWithTracing) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("order.item_name", order.ItemName),
			attribute.Int("order.quantity", order.Quantity),
			attribute.Float64("order.total_price", order.TotalPrice),
		),
	)
	defer span.End()

	err := r.OrderRepository.Create(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("order.id", int(order.ID)))
	return nil
}

// FindByID records a span around the order lookup
func (r *OrderRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
		),
	)
	defer span.End()

	order, err := r.OrderRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("order.status", string(order.Status)))
	return order, nil
}

// UpdateStatus records a span around the status write
func (r *OrderRepositoryWithTracing) UpdateStatus(ctx context.Context, id uint, status domain.Status) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateStatus",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
			attribute.String("order.status", string(status)),
		),
	)
	defer span.End()

	err := r.OrderRepository.UpdateStatus(ctx, id, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
