package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// ItemRepositoryWithTracing decorates an ItemRepository with tracing.
// The stock-affecting methods are overridden to record spans; read-only
// lookups that never sit on a hot path are inherited untraced.
type ItemRepositoryWithTracing struct {
	domain.ItemRepository
}

// NewItemRepositoryWithTracing wraps an existing repository with tracing
func NewItemRepositoryWithTracing(next domain.ItemRepository) *ItemRepositoryWithTracing {
	return &ItemRepositoryWithTracing{ItemRepository: next}
}

// NewGormItemRepositoryWithTracing creates a gorm-backed repository
// wrapped with tracing
func NewGormItemRepositoryWithTracing(db *gorm.DB) *ItemRepositoryWithTracing {
	return NewItemRepositoryWithTracing(NewGormItemRepository(db))
}

// Create records a span around item creation
func (r *ItemRepositoryWithTracing) Create(ctx context.Context, item *domain.Item) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("item.name", item.Name),
			attribute.Int("item.quantity", item.Quantity),
		),
	)
	defer span.End()

	err := r.ItemRepository.Create(ctx, item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("item.id", int(item.ID)))
	return nil
}

// FindByName records a span around the name lookup
func (r *ItemRepositoryWithTracing) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByName",
		trace.WithAttributes(
			attribute.String("item.name", name),
		),
	)
	defer span.End()

	item, err := r.ItemRepository.FindByName(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("item.id", int(item.ID)),
		attribute.Int("item.quantity", item.Quantity),
	)
	return item, nil
}

// ReserveStock records a span around the conditional decrement
func (r *ItemRepositoryWithTracing) ReserveStock(ctx context.Context, name string, quantity int) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.ReserveStock",
		trace.WithAttributes(
			attribute.String("item.name", name),
			attribute.Int("reservation.quantity", quantity),
		),
	)
	defer span.End()

	reserved, err := r.ItemRepository.ReserveStock(ctx, name, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("reservation.reserved", reserved))
	return reserved, nil
}

// ReturnStock records a span around the stock return
func (r *ItemRepositoryWithTracing) ReturnStock(ctx context.Context, name string, quantity int) error {
	ctx, span := tracer.Start(ctx, "repository.ReturnStock",
		trace.WithAttributes(
			attribute.String("item.name", name),
			attribute.Int("return.quantity", quantity),
		),
	)
	defer span.End()

	err := r.ItemRepository.ReturnStock(ctx, name, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindLowStock records a span around the low-stock scan
func (r *ItemRepositoryWithTracing) FindLowStock(ctx context.Context) ([]domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.FindLowStock")
	defer span.End()

	items, err := r.ItemRepository.FindLowStock(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("lowstock.count", len(items)))
	return items, nil
}
