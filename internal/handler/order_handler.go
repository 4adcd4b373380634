package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prorent/internal/service"
)

// OrderHandler handles order placement and the order/invoice lifecycle for
// customers and vendors.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Place handles POST /api/orders
// @Summary Place a rental order
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse "Empty order or invalid rental dates"
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	customerID, ok := callerID(c)
	if !ok {
		return
	}

	var input service.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "items with product_id, quantity, start_date, and end_date are required")
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), customerID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, order)
}

// ListMine handles GET /api/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	customerID, ok := callerID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, orders)
}

// ListVendor handles GET /api/vendor/orders
func (h *OrderHandler) ListVendor(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, orders)
}

// Confirm handles POST /api/vendor/orders/:id/confirm
func (h *OrderHandler) Confirm(c *gin.Context) {
	vendorID, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.Confirm(c.Request.Context(), vendorID, orderID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}

// Pay handles POST /api/orders/:id/pay
func (h *OrderHandler) Pay(c *gin.Context) {
	customerID, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.Pay(c.Request.Context(), customerID, orderID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, order)
}
