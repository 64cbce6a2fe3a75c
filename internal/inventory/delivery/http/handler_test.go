package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratespace/cratespace/internal/inventory/domain"
	"github.com/cratespace/cratespace/internal/inventory/usecase/command"
	"github.com/cratespace/cratespace/internal/inventory/usecase/query"
)

// fakeItemRepo is a mutex-guarded in-memory item store shared by the
// package's tests. The handler registers prometheus collectors on the
// default registry, so it is built once and the repo is reset per test.
type fakeItemRepo struct {
	mu     sync.Mutex
	items  map[uint]*domain.Item
	nextID uint
}

func (f *fakeItemRepo) reset(items ...domain.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = make(map[uint]*domain.Item)
	f.nextID = 1
	for i := range items {
		item := items[i]
		if item.ID == 0 {
			item.ID = f.nextID
		}
		if item.ID >= f.nextID {
			f.nextID = item.ID + 1
		}
		f.items[item.ID] = &item
	}
}

func (f *fakeItemRepo) byName(name string) *domain.Item {
	for _, item := range f.items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

func (f *fakeItemRepo) Create(ctx context.Context, item *domain.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byName(item.Name) != nil {
		return domain.ErrNameConflict
	}
	item.ID = f.nextID
	f.nextID++
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	copy := *item
	return &copy, nil
}

func (f *fakeItemRepo) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.byName(name)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	copy := *item
	return &copy, nil
}

func (f *fakeItemRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Item
	for _, item := range f.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *domain.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if other := f.byName(item.Name); other != nil && other.ID != item.ID {
		return domain.ErrNameConflict
	}
	*existing = *item
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeItemRepo) ReserveStock(ctx context.Context, name string, quantity int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.byName(name)
	if item == nil || item.Quantity < quantity {
		return false, nil
	}
	item.Quantity -= quantity
	return true, nil
}

func (f *fakeItemRepo) ReturnStock(ctx context.Context, name string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.byName(name)
	if item == nil {
		return domain.ErrItemNotFound
	}
	item.Quantity += quantity
	return nil
}

func (f *fakeItemRepo) FindLowStock(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Item
	for _, item := range f.items {
		if item.IsLowStock() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) TotalValue(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total float64
	for _, item := range f.items {
		total += item.Value()
	}
	return total, nil
}

func (f *fakeItemRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

var (
	setupOnce   sync.Once
	testRepo    *fakeItemRepo
	testRouter  *mux.Router
	testHandler *InventoryHandler
)

func setup(t *testing.T) (*mux.Router, *fakeItemRepo) {
	t.Helper()
	setupOnce.Do(func() {
		testRepo = &fakeItemRepo{}
		testHandler = NewInventoryHandler(
			command.NewCreateItemHandler(testRepo),
			command.NewUpdateItemHandler(testRepo),
			command.NewDeleteItemHandler(testRepo),
			command.NewUpdateStockHandler(testRepo),
			query.NewGetItemHandler(testRepo),
			query.NewListItemsHandler(testRepo),
			query.NewLowStockAlertsHandler(testRepo),
			query.NewInventoryValueHandler(testRepo),
			query.NewItemCountHandler(testRepo),
		)
		testRouter = mux.NewRouter()
		testHandler.RegisterRoutes(testRouter)
	})
	testRepo.reset(
		domain.Item{ID: 1, Name: "Widget A", Quantity: 100, Price: 19.99, MinimumQuantity: 20},
		domain.Item{ID: 2, Name: "Widget B", Quantity: 50, Price: 29.99, MinimumQuantity: 10},
		domain.Item{ID: 3, Name: "Gadget X", Quantity: 75, Price: 49.99, MinimumQuantity: 15},
	)
	return testRouter, testRepo
}

func doRequest(router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateItemEndpoint(t *testing.T) {
	router, repo := setup(t)

	rec := doRequest(router, "POST", "/api/inventory", map[string]interface{}{
		"name": "Widget C", "quantity": 30, "price": 9.99,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Item created successfully", resp.Message)

	item, err := repo.FindByName(context.Background(), "Widget C")
	require.NoError(t, err)
	assert.Equal(t, 30, item.Quantity)
	assert.Equal(t, domain.DefaultMinimumQuantity, item.MinimumQuantity)
}

func TestCreateItemEndpoint_DuplicateName(t *testing.T) {
	router, _ := setup(t)

	rec := doRequest(router, "POST", "/api/inventory", map[string]interface{}{
		"name": "Widget A", "quantity": 10, "price": 1.0,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)
}

func TestCreateItemEndpoint_InvalidBody(t *testing.T) {
	router, _ := setup(t)

	req := httptest.NewRequest("POST", "/api/inventory", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetItemEndpoint(t *testing.T) {
	router, _ := setup(t)

	rec := doRequest(router, "GET", "/api/inventory/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Widget B", data["name"])

	rec = doRequest(router, "GET", "/api/inventory/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStockEndpoint(t *testing.T) {
	router, repo := setup(t)

	rec := doRequest(router, "PATCH", "/api/inventory/1/stock", map[string]interface{}{"quantity": 250})
	require.Equal(t, http.StatusOK, rec.Code)

	item, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 250, item.Quantity)
}

func TestUpdateStockEndpoint_NegativeQuantity(t *testing.T) {
	router, repo := setup(t)

	rec := doRequest(router, "PATCH", "/api/inventory/1/stock", map[string]interface{}{"quantity": -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	item, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 100, item.Quantity)
}

func TestDeleteItemEndpoint(t *testing.T) {
	router, repo := setup(t)

	rec := doRequest(router, "DELETE", "/api/inventory/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := repo.FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	rec = doRequest(router, "DELETE", "/api/inventory/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLowStockEndpoint(t *testing.T) {
	router, repo := setup(t)
	repo.reset(
		domain.Item{ID: 1, Name: "Widget A", Quantity: 100, Price: 19.99, MinimumQuantity: 20},
		domain.Item{ID: 3, Name: "Gadget X", Quantity: 12, Price: 49.99, MinimumQuantity: 15},
	)

	rec := doRequest(router, "GET", "/api/inventory/low-stock", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	alerts := resp.Data.([]interface{})
	require.Len(t, alerts, 1)
	alert := alerts[0].(map[string]interface{})
	assert.Equal(t, "Gadget X", alert["item_name"])
}

func TestInventoryValueEndpoint(t *testing.T) {
	router, _ := setup(t)

	rec := doRequest(router, "GET", "/api/inventory/value", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.InDelta(t, 7996.25, data["total_value"].(float64), 0.001)
}

func TestListItemsEndpoint_GaugeCountsAllItems(t *testing.T) {
	router, _ := setup(t)

	rec := doRequest(router, "GET", "/api/inventory?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	page := resp.Data.([]interface{})
	require.Len(t, page, 1)

	assert.Equal(t, 3.0, testutil.ToFloat64(testHandler.totalItems),
		"gauge tracks the full item count, not the requested page")
}
