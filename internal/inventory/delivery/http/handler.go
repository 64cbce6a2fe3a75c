package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cratespace/cratespace/internal/inventory/domain"
	"github.com/cratespace/cratespace/internal/inventory/usecase/command"
	"github.com/cratespace/cratespace/internal/inventory/usecase/query"
	"github.com/cratespace/cratespace/pkg/logger"
)

// InventoryHandler handles HTTP requests for inventory using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	createHandler      *command.CreateItemHandler
	updateHandler      *command.UpdateItemHandler
	deleteHandler      *command.DeleteItemHandler
	updateStockHandler *command.UpdateStockHandler

	// Query handlers
	getHandler      *query.GetItemHandler
	listHandler     *query.ListItemsHandler
	lowStockHandler *query.LowStockAlertsHandler
	valueHandler    *query.InventoryValueHandler
	countHandler    *query.ItemCountHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalItems     prometheus.Gauge
}

// NewInventoryHandler creates a new inventory handler using dependency injection
func NewInventoryHandler(
	createHandler *command.CreateItemHandler,
	updateHandler *command.UpdateItemHandler,
	deleteHandler *command.DeleteItemHandler,
	updateStockHandler *command.UpdateStockHandler,
	getHandler *query.GetItemHandler,
	listHandler *query.ListItemsHandler,
	lowStockHandler *query.LowStockAlertsHandler,
	valueHandler *query.InventoryValueHandler,
	countHandler *query.ItemCountHandler,
) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to the inventory endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_total_items",
			Help: "Total number of inventory items in the system",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalItems)

	return &InventoryHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		deleteHandler:      deleteHandler,
		updateStockHandler: updateStockHandler,
		getHandler:         getHandler,
		listHandler:        listHandler,
		lowStockHandler:    lowStockHandler,
		valueHandler:       valueHandler,
		countHandler:       countHandler,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		totalItems:         totalItems,
	}
}

// Response is the JSON envelope for all inventory endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type itemRequest struct {
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	MinimumQuantity *int    `json:"minimum_quantity"`
}

// CreateItem handles POST /api/inventory
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/inventory", time.Now())

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, "POST", "/api/inventory", http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.createHandler.Handle(r.Context(), command.CreateItemCommand{
		Name:            req.Name,
		Quantity:        req.Quantity,
		Price:           req.Price,
		MinimumQuantity: req.MinimumQuantity,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrNameConflict) {
			status = http.StatusConflict
		}
		h.respond(w, "POST", "/api/inventory", status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.respond(w, "POST", "/api/inventory", http.StatusCreated, Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// ListItems handles GET /api/inventory
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/inventory", time.Now())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listHandler.Handle(r.Context(), query.ListItemsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list items")
		h.respond(w, "GET", "/api/inventory", http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list items",
		})
		return
	}

	if count, err := h.countHandler.Handle(r.Context(), query.ItemCountQuery{}); err == nil {
		h.totalItems.Set(float64(count))
	}
	h.respond(w, "GET", "/api/inventory", http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// GetItem handles GET /api/inventory/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/inventory/{id}", time.Now())

	id, err := parseID(r)
	if err != nil {
		h.respond(w, "GET", "/api/inventory/{id}", http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	item, err := h.getHandler.Handle(r.Context(), query.GetItemQuery{ID: id})
	if err != nil {
		h.respond(w, "GET", "/api/inventory/{id}", http.StatusNotFound, Response{
			Success: false,
			Error:   "Item not found",
		})
		return
	}

	h.respond(w, "GET", "/api/inventory/{id}", http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// UpdateItem handles PUT /api/inventory/{id}
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	defer h.observe("PUT", "/api/inventory/{id}", time.Now())

	id, err := parseID(r)
	if err != nil {
		h.respond(w, "PUT", "/api/inventory/{id}", http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, "PUT", "/api/inventory/{id}", http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	minimumQuantity := domain.DefaultMinimumQuantity
	if req.MinimumQuantity != nil {
		minimumQuantity = *req.MinimumQuantity
	}

	item, err := h.updateHandler.Handle(r.Context(), command.UpdateItemCommand{
		ID:              id,
		Name:            req.Name,
		Quantity:        req.Quantity,
		Price:           req.Price,
		MinimumQuantity: minimumQuantity,
	})
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrNameConflict):
			status = http.StatusConflict
		}
		h.respond(w, "PUT", "/api/inventory/{id}", status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.respond(w, "PUT", "/api/inventory/{id}", http.StatusOK, Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/inventory/{id}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	defer h.observe("DELETE", "/api/inventory/{id}", time.Now())

	id, err := parseID(r)
	if err != nil {
		h.respond(w, "DELETE", "/api/inventory/{id}", http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteItemCommand{ID: id}); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrItemNotFound) {
			status = http.StatusNotFound
		}
		h.respond(w, "DELETE", "/api/inventory/{id}", status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.respond(w, "DELETE", "/api/inventory/{id}", http.StatusOK, Response{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// UpdateStock handles PATCH /api/inventory/{id}/stock
func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	defer h.observe("PATCH", "/api/inventory/{id}/stock", time.Now())

	id, err := parseID(r)
	if err != nil {
		h.respond(w, "PATCH", "/api/inventory/{id}/stock", http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, "PATCH", "/api/inventory/{id}/stock", http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updateStockHandler.Handle(r.Context(), command.UpdateStockCommand{ItemID: id, Quantity: req.Quantity}); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrItemNotFound) {
			status = http.StatusNotFound
		}
		h.respond(w, "PATCH", "/api/inventory/{id}/stock", status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.respond(w, "PATCH", "/api/inventory/{id}/stock", http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
	})
}

// LowStock handles GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/inventory/low-stock", time.Now())

	alerts, err := h.lowStockHandler.Handle(r.Context(), query.LowStockAlertsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to fetch low stock alerts")
		h.respond(w, "GET", "/api/inventory/low-stock", http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch low stock alerts",
		})
		return
	}

	h.respond(w, "GET", "/api/inventory/low-stock", http.StatusOK, Response{
		Success: true,
		Data:    alerts,
	})
}

// InventoryValue handles GET /api/inventory/value
func (h *InventoryHandler) InventoryValue(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/inventory/value", time.Now())

	total, err := h.valueHandler.Handle(r.Context(), query.InventoryValueQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute inventory value")
		h.respond(w, "GET", "/api/inventory/value", http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compute inventory value",
		})
		return
	}

	h.respond(w, "GET", "/api/inventory/value", http.StatusOK, Response{
		Success: true,
		Data:    map[string]float64{"total_value": total},
	})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.ListItems).Methods("GET")
	router.HandleFunc("/api/inventory", h.CreateItem).Methods("POST")
	router.HandleFunc("/api/inventory/low-stock", h.LowStock).Methods("GET")
	router.HandleFunc("/api/inventory/value", h.InventoryValue).Methods("GET")
	router.HandleFunc("/api/inventory/{id:[0-9]+}", h.GetItem).Methods("GET")
	router.HandleFunc("/api/inventory/{id:[0-9]+}", h.UpdateItem).Methods("PUT")
	router.HandleFunc("/api/inventory/{id:[0-9]+}", h.DeleteItem).Methods("DELETE")
	router.HandleFunc("/api/inventory/{id:[0-9]+}/stock", h.UpdateStock).Methods("PATCH")
}

func (h *InventoryHandler) respond(w http.ResponseWriter, method, endpoint string, status int, payload Response) {
	h.requestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	respondJSON(w, status, payload)
}

func (h *InventoryHandler) observe(method, endpoint string, start time.Time) {
	h.requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
