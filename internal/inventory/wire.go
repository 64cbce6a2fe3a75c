//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/cratespace/cratespace/internal/inventory/delivery/http"
	"github.com/cratespace/cratespace/internal/inventory/domain"
	"github.com/cratespace/cratespace/internal/inventory/repository"
	"github.com/cratespace/cratespace/internal/inventory/usecase/command"
	"github.com/cratespace/cratespace/internal/inventory/usecase/query"
)

// ProvideItemRepository provides the inventory repository wrapped with tracing
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateItemHandler,
	command.NewUpdateItemHandler,
	command.NewDeleteItemHandler,
	command.NewUpdateStockHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetItemHandler,
	query.NewListItemsHandler,
	query.NewLowStockAlertsHandler,
	query.NewInventoryValueHandler,
	query.NewItemCountHandler,
)

// InitializeHTTPHandler initializes the inventory HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
