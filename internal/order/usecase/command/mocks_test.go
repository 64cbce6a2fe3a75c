package command

import (
	"context"
	"errors"
	"sync"

	"github.com/cratespace/cratespace/internal/order/client"
	"github.com/cratespace/cratespace/internal/order/domain"
	"github.com/cratespace/cratespace/kafka"
)

// mockOrderRepo is a mutex-guarded in-memory order store
type mockOrderRepo struct {
	mu         sync.Mutex
	orders     map[uint]*domain.Order
	nextID     uint
	failCreate bool
	failStatus bool
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uint]*domain.Order), nextID: 1}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return errors.New("database unavailable")
	}
	order.ID = m.nextID
	m.nextID++
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copy := *order
	return &copy, nil
}

func (m *mockOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, order := range m.orders {
		out = append(out, *order)
	}
	return out, nil
}

func (m *mockOrderRepo) FindByStatus(ctx context.Context, status domain.Status, limit, offset int) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, order := range m.orders {
		if order.Status == status {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindRecent(ctx context.Context, count int) ([]domain.Order, error) {
	return m.FindAll(ctx, count, 0)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uint, status domain.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failStatus {
		return errors.New("database unavailable")
	}
	order, ok := m.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *mockOrderRepo) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, order := range m.orders {
		if order.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// mockInventory mimics the conditional-decrement reservation semantics of
// the real inventory repository
type mockInventory struct {
	mu    sync.Mutex
	items map[string]*client.ItemInfo
}

func newMockInventory(items ...client.ItemInfo) *mockInventory {
	m := &mockInventory{items: make(map[string]*client.ItemInfo)}
	for i := range items {
		item := items[i]
		m.items[item.Name] = &item
	}
	return m
}

func (m *mockInventory) CheckAvailability(ctx context.Context, itemName string, quantity int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[itemName]
	if !ok {
		return false, nil
	}
	return item.Quantity >= quantity, nil
}

func (m *mockInventory) ItemByName(ctx context.Context, itemName string) (*client.ItemInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[itemName]
	if !ok {
		return nil, client.ErrItemNotFound
	}
	copy := *item
	return &copy, nil
}

func (m *mockInventory) ReserveStock(ctx context.Context, itemName string, quantity int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[itemName]
	if !ok || item.Quantity < quantity {
		return false, nil
	}
	item.Quantity -= quantity
	return true, nil
}

func (m *mockInventory) ReturnStock(ctx context.Context, itemName string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[itemName]
	if !ok {
		return client.ErrItemNotFound
	}
	item.Quantity += quantity
	return nil
}

func (m *mockInventory) quantity(itemName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[itemName]; ok {
		return item.Quantity
	}
	return 0
}

// mockPublisher records published events
type mockPublisher struct {
	mu       sync.Mutex
	placed   []kafka.OrderPlacedEvent
	lowStock []kafka.LowStockEvent
}

func (m *mockPublisher) PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.placed = append(m.placed, event)
	return nil
}

func (m *mockPublisher) PublishLowStock(ctx context.Context, event kafka.LowStockEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lowStock = append(m.lowStock, event)
	return nil
}
