package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cratespace/cratespace/internal/order/domain"
	"github.com/cratespace/cratespace/internal/order/usecase/command"
	"github.com/cratespace/cratespace/internal/order/usecase/query"
	"github.com/cratespace/cratespace/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	placeHandler        *command.PlaceOrderHandler
	cancelHandler       *command.CancelOrderHandler
	updateStatusHandler *command.UpdateStatusHandler

	// Query handlers
	statusHandler *query.GetOrderStatusHandler
	listHandler   *query.ListOrdersHandler

	ordersPlaced   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewOrderHandler creates a new order handler using dependency injection
func NewOrderHandler(
	placeHandler *command.PlaceOrderHandler,
	cancelHandler *command.CancelOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	statusHandler *query.GetOrderStatusHandler,
	listHandler *query.ListOrdersHandler,
) *OrderHandler {
	ordersPlaced := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_orders_total",
			Help: "Order placement attempts by outcome",
		},
		[]string{"outcome"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(ordersPlaced)
	prometheus.MustRegister(requestLatency)

	return &OrderHandler{
		placeHandler:        placeHandler,
		cancelHandler:       cancelHandler,
		updateStatusHandler: updateStatusHandler,
		statusHandler:       statusHandler,
		listHandler:         listHandler,
		ordersPlaced:        ordersPlaced,
		requestLatency:      requestLatency,
	}
}

// Response is the JSON envelope for all order endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/orders", time.Now())

	var req struct {
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.placeHandler.Handle(r.Context(), command.PlaceOrderCommand{
		ItemName: req.ItemName,
		Quantity: req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("item_name", req.ItemName).Msg("Order placement failed")
		h.ordersPlaced.WithLabelValues("error").Inc()
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to place order",
		})
		return
	}

	if !result.Success {
		h.ordersPlaced.WithLabelValues("rejected").Inc()
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Message: result.Message,
		})
		return
	}

	h.ordersPlaced.WithLabelValues("placed").Inc()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: result.Message,
		Data:    result,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/orders", time.Now())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	status := r.URL.Query().Get("status")

	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownStatus) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// GetOrderStatus handles GET /api/orders/{id}/status
func (h *OrderHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/orders/{id}/status", time.Now())

	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	result, err := h.statusHandler.Handle(r.Context(), query.GetOrderStatusQuery{OrderID: id})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// CancelOrder handles POST /api/orders/{id}/cancel
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/orders/{id}/cancel", time.Now())

	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	cancelled, err := h.cancelHandler.Handle(r.Context(), command.CancelOrderCommand{OrderID: id})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Cancellation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to cancel order",
		})
		return
	}

	if !cancelled {
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Message: "Order cannot be cancelled",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order cancelled successfully",
	})
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	defer h.observe("PATCH", "/api/orders/{id}/status", time.Now())

	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updateStatusHandler.Handle(r.Context(), command.UpdateStatusCommand{OrderID: id, Status: req.Status}); err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidTransition):
			status = http.StatusUnprocessableEntity
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
	})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders", h.PlaceOrder).Methods("POST")
	router.HandleFunc("/api/orders/{id:[0-9]+}/status", h.GetOrderStatus).Methods("GET")
	router.HandleFunc("/api/orders/{id:[0-9]+}/status", h.UpdateStatus).Methods("PATCH")
	router.HandleFunc("/api/orders/{id:[0-9]+}/cancel", h.CancelOrder).Methods("POST")
}

func (h *OrderHandler) observe(method, endpoint string, start time.Time) {
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
