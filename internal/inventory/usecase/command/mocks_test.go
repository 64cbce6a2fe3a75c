package command

import (
	"context"
	"sync"
	"time"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

// mockItemRepo is a mutex-guarded in-memory item store
type mockItemRepo struct {
	mu     sync.Mutex
	items  map[uint]*domain.Item
	nextID uint
}

func newMockItemRepo(items ...domain.Item) *mockItemRepo {
	repo := &mockItemRepo{items: make(map[uint]*domain.Item), nextID: 1}
	for i := range items {
		item := items[i]
		if item.ID == 0 {
			item.ID = repo.nextID
		}
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
		repo.items[item.ID] = &item
	}
	return repo
}

func (m *mockItemRepo) byName(name string) *domain.Item {
	for _, item := range m.items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

func (m *mockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byName(item.Name) != nil {
		return domain.ErrNameConflict
	}
	item.ID = m.nextID
	m.nextID++
	stored := *item
	m.items[item.ID] = &stored
	return nil
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	copy := *item
	return &copy, nil
}

func (m *mockItemRepo) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := m.byName(name)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	copy := *item
	return &copy, nil
}

func (m *mockItemRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Item
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if other := m.byName(item.Name); other != nil && other.ID != item.ID {
		return domain.ErrNameConflict
	}
	*existing = *item
	return nil
}

func (m *mockItemRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepo) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.Quantity = quantity
	item.LastRestocked = time.Now().UTC()
	return nil
}

func (m *mockItemRepo) ReserveStock(ctx context.Context, name string, quantity int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := m.byName(name)
	if item == nil || item.Quantity < quantity {
		return false, nil
	}
	item.Quantity -= quantity
	return true, nil
}

func (m *mockItemRepo) ReturnStock(ctx context.Context, name string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := m.byName(name)
	if item == nil {
		return domain.ErrItemNotFound
	}
	item.Quantity += quantity
	return nil
}

func (m *mockItemRepo) FindLowStock(ctx context.Context) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Item
	for _, item := range m.items {
		if item.IsLowStock() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockItemRepo) TotalValue(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, item := range m.items {
		total += item.Value()
	}
	return total, nil
}

func (m *mockItemRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}
