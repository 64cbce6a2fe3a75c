// Package dashboard aggregates inventory and order statistics for the
// dashboard view, caching the result in Redis for a short TTL.
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	invquery "github.com/cratespace/cratespace/internal/inventory/usecase/query"
	orderdomain "github.com/cratespace/cratespace/internal/order/domain"
	orderquery "github.com/cratespace/cratespace/internal/order/usecase/query"
	"github.com/cratespace/cratespace/pkg/logger"
)

const (
	cacheKey = "dashboard:stats"
	cacheTTL = 30 * time.Second
)

// Stats is the aggregate view served to the dashboard
type Stats struct {
	TotalItems          int64               `json:"total_items"`
	TotalInventoryValue float64             `json:"total_inventory_value"`
	LowStockCount       int                 `json:"low_stock_count"`
	PendingOrders       int64               `json:"pending_orders"`
	RecentOrders        []orderdomain.Order `json:"recent_orders"`
	GeneratedAt         time.Time           `json:"generated_at"`
}

// Handler serves the dashboard statistics endpoint
type Handler struct {
	itemCount    *invquery.ItemCountHandler
	lowStock     *invquery.LowStockAlertsHandler
	value        *invquery.InventoryValueHandler
	pendingCount *orderquery.PendingCountHandler
	recentOrders *orderquery.RecentOrdersHandler
	cache        *redis.Client
}

// NewHandler creates a new dashboard handler. cache may be nil, in which
// case every request recomputes the stats.
func NewHandler(
	itemCount *invquery.ItemCountHandler,
	lowStock *invquery.LowStockAlertsHandler,
	value *invquery.InventoryValueHandler,
	pendingCount *orderquery.PendingCountHandler,
	recentOrders *orderquery.RecentOrdersHandler,
	cache *redis.Client,
) *Handler {
	return &Handler{
		itemCount:    itemCount,
		lowStock:     lowStock,
		value:        value,
		pendingCount: pendingCount,
		recentOrders: recentOrders,
		cache:        cache,
	}
}

// GetStats handles GET /api/dashboard
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if stats, ok := h.fromCache(ctx); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		json.NewEncoder(w).Encode(stats)
		return
	}

	stats, err := h.compute(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to compute dashboard stats")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to compute dashboard stats"})
		return
	}

	h.store(ctx, stats)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	json.NewEncoder(w).Encode(stats)
}

// RegisterRoutes registers the dashboard routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard", h.GetStats).Methods("GET")
}

func (h *Handler) compute(ctx context.Context) (*Stats, error) {
	itemCount, err := h.itemCount.Handle(ctx, invquery.ItemCountQuery{})
	if err != nil {
		return nil, err
	}

	total, err := h.value.Handle(ctx, invquery.InventoryValueQuery{})
	if err != nil {
		return nil, err
	}

	alerts, err := h.lowStock.Handle(ctx, invquery.LowStockAlertsQuery{})
	if err != nil {
		return nil, err
	}

	pending, err := h.pendingCount.Handle(ctx, orderquery.PendingCountQuery{})
	if err != nil {
		return nil, err
	}

	recent, err := h.recentOrders.Handle(ctx, orderquery.RecentOrdersQuery{Count: 5})
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalItems:          itemCount,
		TotalInventoryValue: total,
		LowStockCount:       len(alerts),
		PendingOrders:       pending,
		RecentOrders:        recent,
		GeneratedAt:         time.Now().UTC(),
	}, nil
}

func (h *Handler) fromCache(ctx context.Context) (*Stats, bool) {
	if h.cache == nil {
		return nil, false
	}

	payload, err := h.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var stats Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (h *Handler) store(ctx context.Context, stats *Stats) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := h.cache.Set(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to cache dashboard stats")
	}
}
