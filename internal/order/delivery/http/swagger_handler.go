package http

// PlaceOrder godoc
// @Summary Place an order
// @Description Place an order against inventory stock; stock is reserved atomically
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body object{item_name=string,quantity=int} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 422 {object} object{success=bool,message=string}
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrderDoc() {}

// ListOrders godoc
// @Summary List orders
// @Description Get all orders with pagination, optionally filtered by status
// @Tags Orders
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// GetOrderStatus godoc
// @Summary Get order status
// @Description Get an order's status with a human-readable note
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/status [get]
func (h *OrderHandler) GetOrderStatusDoc() {}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Cancel an undelivered order and return its stock
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 422 {object} object{success=bool,message=string}
// @Router /api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrderDoc() {}

// UpdateStatus godoc
// @Summary Update order status
// @Description Transition an order to a new status; illegal transitions are rejected
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string} true "New status"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 422 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatusDoc() {}
