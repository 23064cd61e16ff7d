// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/doniphane/clickandship/internal/services"
	"github.com/doniphane/clickandship/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

type cartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	snapshot, err := h.cartService.GetCart(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Cart retrieved", gin.H{
		"cart_items":  snapshot.Items,
		"total_items": snapshot.TotalItems,
		"total_price": snapshot.TotalPrice,
	})
}

// POST /api/cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid JSON body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	snapshot, added, err := h.cartService.AddToCart(userID, productID, req.Quantity)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product added to cart", gin.H{
		"added_product": added,
		"cart_items":    snapshot.Items,
		"total_items":   snapshot.TotalItems,
		"total_price":   snapshot.TotalPrice,
	})
}

// POST /api/cart/remove
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid JSON body", err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	snapshot, removed, err := h.cartService.RemoveFromCart(userID, productID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product removed from cart", gin.H{
		"removed_product": removed,
		"cart_items":      snapshot.Items,
		"total_items":     snapshot.TotalItems,
		"total_price":     snapshot.TotalPrice,
	})
}

// POST /api/cart/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	removed, err := h.cartService.ClearCart(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Cart cleared", gin.H{
		"removed_items": removed,
	})
}
