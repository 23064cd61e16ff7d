// internal/handlers/order.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/services"
	"github.com/doniphane/clickandship/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	list, err := h.orderService.ListOrders(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Orders retrieved", gin.H{
		"orders":       list.Orders,
		"total_orders": list.TotalOrders,
		"total_spent":  list.TotalSpent,
	})
}

// GET /api/orders/recent
func (h *OrderHandler) ListRecentOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	orders, err := h.orderService.ListRecent(userID, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Recent orders retrieved", gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GET /api/orders/status/:status
func (h *OrderHandler) ListOrdersByStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	status := models.OrderStatus(c.Param("status"))

	orders, err := h.orderService.ListByStatus(userID, status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Orders retrieved", gin.H{
		"status": status,
		"orders": orders,
		"count":  len(orders),
	})
}

// GET /api/products/popular
func (h *OrderHandler) PopularProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := h.orderService.MostOrderedProducts(limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Popular products retrieved", gin.H{
		"products": rows,
		"count":    len(rows),
	})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order id", nil)
		return
	}

	detail, err := h.orderService.GetOrder(userID, orderID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Order retrieved", gin.H{
		"order":            detail.Order,
		"order_items":      detail.Items,
		"items_count":      detail.ItemsCount,
		"calculated_total": detail.CalculatedTotal,
	})
}
