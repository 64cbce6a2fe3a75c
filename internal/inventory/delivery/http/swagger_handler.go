package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateItem godoc
// @Summary Create inventory item
// @Description Create a new inventory item; the name must be unique
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body object{name=string,quantity=int,price=number,minimum_quantity=int} true "Item data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/inventory [post]
func (h *InventoryHandler) CreateItemDoc() {}

// ListItems godoc
// @Summary List inventory items
// @Description Get all inventory items with pagination
// @Tags Inventory
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory [get]
func (h *InventoryHandler) ListItemsDoc() {}

// GetItem godoc
// @Summary Get inventory item
// @Description Get an inventory item by its ID
// @Tags Inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{id} [get]
func (h *InventoryHandler) GetItemDoc() {}

// UpdateStock godoc
// @Summary Update item stock
// @Description Set the absolute stock quantity of an item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body object{quantity=int} true "Absolute quantity"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{id}/stock [patch]
func (h *InventoryHandler) UpdateStockDoc() {}

// LowStock godoc
// @Summary Low stock alerts
// @Description List items at or below their reorder threshold
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStockDoc() {}

// InventoryValue godoc
// @Summary Total inventory value
// @Description Sum of quantity times price over all items
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=object{total_value=number}}
// @Router /api/inventory/value [get]
func (h *InventoryHandler) InventoryValueDoc() {}
