package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders and the order drawer.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrderDetail)
	}
}

// listOrders godoc
// @Summary List orders
// @Description Lists every order
// @Tags orders
// @Produce  json
// @Success 200 {array} domain.Order
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// getOrderDetail godoc
// @Summary Get the order drawer
// @Description Retrieves an order with its current invoices, activity, documents and open balance
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} domain.OrderDetail
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Router /orders/{id} [get]
func (h *orderHandler) getOrderDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")
	logger = logger.With(slog.String("order_id", orderID))

	detail, err := h.orderService.GetOrderDetail(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, detail)
}
