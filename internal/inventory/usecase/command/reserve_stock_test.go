package command

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

func TestReserveStock(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, Name: "Widget A", Quantity: 10, Price: 19.99})
	handler := NewReserveStockHandler(repo)

	reserved, err := handler.Handle(context.Background(), ReserveStockCommand{ItemName: "Widget A", Quantity: 4})
	require.NoError(t, err)
	assert.True(t, reserved)

	item, err := repo.FindByName(context.Background(), "Widget A")
	require.NoError(t, err)
	assert.Equal(t, 6, item.Quantity)
}

func TestReserveStock_ShortStock(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, Name: "Widget A", Quantity: 3, Price: 19.99})
	handler := NewReserveStockHandler(repo)

	reserved, err := handler.Handle(context.Background(), ReserveStockCommand{ItemName: "Widget A", Quantity: 4})
	require.NoError(t, err)
	assert.False(t, reserved)

	item, err := repo.FindByName(context.Background(), "Widget A")
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestReserveStock_UnknownItem(t *testing.T) {
	handler := NewReserveStockHandler(newMockItemRepo())

	reserved, err := handler.Handle(context.Background(), ReserveStockCommand{ItemName: "Widget Z", Quantity: 1})
	require.NoError(t, err)
	assert.False(t, reserved)
}

func TestReserveStock_Validation(t *testing.T) {
	handler := NewReserveStockHandler(newMockItemRepo())

	_, err := handler.Handle(context.Background(), ReserveStockCommand{ItemName: "", Quantity: 1})
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), ReserveStockCommand{ItemName: "Widget A", Quantity: 0})
	assert.Error(t, err)
}

func TestReserveStock_ConcurrentReservations(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, Name: "Widget A", Quantity: 10, Price: 19.99})
	handler := NewReserveStockHandler(repo)

	var succeeded atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if reserved, err := handler.Handle(context.Background(), ReserveStockCommand{ItemName: "Widget A", Quantity: 1}); err == nil && reserved {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	item, err := repo.FindByName(context.Background(), "Widget A")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestReturnStock(t *testing.T) {
	repo := newMockItemRepo(domain.Item{ID: 1, Name: "Widget A", Quantity: 95, Price: 19.99})
	handler := NewReturnStockHandler(repo)

	require.NoError(t, handler.Handle(context.Background(), ReturnStockCommand{ItemName: "Widget A", Quantity: 5}))

	item, err := repo.FindByName(context.Background(), "Widget A")
	require.NoError(t, err)
	assert.Equal(t, 100, item.Quantity)
}

func TestReturnStock_UnknownItem(t *testing.T) {
	handler := NewReturnStockHandler(newMockItemRepo())

	err := handler.Handle(context.Background(), ReturnStockCommand{ItemName: "Widget Z", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
