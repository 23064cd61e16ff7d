// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/doniphane/clickandship/internal/services"
	"github.com/doniphane/clickandship/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	authzService   *services.AuthorizationService
	storage        services.FileStorage
}

func NewProductHandler(productService *services.ProductService, authzService *services.AuthorizationService, storage services.FileStorage) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authzService:   authzService,
		storage:        storage,
	}
}

func (h *ProductHandler) requireManageProducts(c *gin.Context) bool {
	roles := utils.GetRolesFromContext(c)
	if !h.authzService.Authorize(roles, services.ActionManageProducts) {
		utils.ForbiddenResponse(c, "Seller or admin role required")
		return false
	}
	return true
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	inStockOnly := c.Query("in_stock") == "true"

	products, err := h.productService.ListProducts(inStockOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Products retrieved", gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GET /api/products/stats
//
// Catalog statistics are public, like the rest of the catalog reads.
func (h *ProductHandler) GetStats(c *gin.Context) {
	stats, err := h.productService.GetStats()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Statistics retrieved", gin.H{
		"total_products":    stats.TotalProducts,
		"in_stock_products": stats.InStockProducts,
		"recent_products":   stats.RecentProducts,
		"average_price":     stats.AveragePrice,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	product, err := h.productService.GetProduct(productID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product retrieved", gin.H{
		"product": product,
	})
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	if !h.requireManageProducts(c) {
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid JSON body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Product created successfully", gin.H{
		"product": product,
	})
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	if !h.requireManageProducts(c) {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid JSON body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(productID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product updated successfully", gin.H{
		"product": product,
	})
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if !h.requireManageProducts(c) {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	if err := h.productService.DeleteProduct(productID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product deleted successfully", gin.H{
		"id": productID,
	})
}

// POST /api/products/:id/image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if !h.requireManageProducts(c) {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Unable to read uploaded file", nil)
		return
	}
	defer file.Close()

	name, err := h.storage.Store(file, fileHeader)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	product, err := h.productService.AttachImage(productID, name)
	if err != nil {
		// The product row is the source of truth; an orphaned upload is
		// cleaned up rather than left behind.
		_ = h.storage.Delete(name)
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Image uploaded successfully", gin.H{
		"product":   product,
		"image_url": h.storage.URL(name),
	})
}
