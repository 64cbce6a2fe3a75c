//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	invdomain "github.com/cratespace/cratespace/internal/inventory/domain"
	invrepository "github.com/cratespace/cratespace/internal/inventory/repository"
	invcommand "github.com/cratespace/cratespace/internal/inventory/usecase/command"
	invquery "github.com/cratespace/cratespace/internal/inventory/usecase/query"
	"github.com/cratespace/cratespace/internal/order/client"
	"github.com/cratespace/cratespace/internal/order/delivery/http"
	"github.com/cratespace/cratespace/internal/order/domain"
	"github.com/cratespace/cratespace/internal/order/repository"
	"github.com/cratespace/cratespace/internal/order/usecase/command"
	"github.com/cratespace/cratespace/internal/order/usecase/query"
	"github.com/cratespace/cratespace/kafka"
)

// ProvideOrderRepository provides the order repository wrapped with tracing
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepositoryWithTracing(db)
}

// ProvideItemRepository provides the inventory repository consumed by the
// in-process inventory client
func ProvideItemRepository(db *gorm.DB) invdomain.ItemRepository {
	return invrepository.NewGormItemRepositoryWithTracing(db)
}

// ProvideEventPublisher adapts the optional Kafka publisher
func ProvideEventPublisher(publisher *kafka.Publisher) command.EventPublisher {
	if publisher == nil {
		return nil
	}
	return publisher
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideItemRepository,
)

var InventoryClientSet = wire.NewSet(
	invquery.NewCheckAvailabilityHandler,
	invquery.NewGetItemHandler,
	invcommand.NewReserveStockHandler,
	invcommand.NewReturnStockHandler,
	client.NewInventoryClient,
	wire.Bind(new(command.Inventory), new(*client.InventoryClient)),
)

var CommandHandlerSet = wire.NewSet(
	command.NewPlaceOrderHandler,
	command.NewCancelOrderHandler,
	command.NewUpdateStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetOrderStatusHandler,
	query.NewListOrdersHandler,
)

// InitializeHTTPHandler initializes the order HTTP handler with all
// dependencies. publisher may be nil when no broker is configured.
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		InventoryClientSet,
		ProvideEventPublisher,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
