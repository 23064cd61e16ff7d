// internal/services/product_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/repository"
	"github.com/doniphane/clickandship/internal/utils"
)

// recentProductWindow is how many newest products count as "recent" in the
// catalog statistics.
const recentProductWindow = 5

type ProductService struct {
	products repository.ProductRepository
	storage  FileStorage
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0,lte=999999.99"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0,lte=999999"`
	ImageName     string  `json:"imageName,omitempty" validate:"omitempty,max=255"`
	Category      string  `json:"category,omitempty" validate:"omitempty,max=255"`
}

// UpdateProductRequest carries partial updates; nil fields are left alone.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gt=0,lte=999999.99"`
	StockQuantity *int     `json:"stockQuantity,omitempty" validate:"omitempty,gte=0,lte=999999"`
	ImageName     *string  `json:"imageName,omitempty" validate:"omitempty,max=255"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,max=255"`
}

// ProductStats aggregates the catalog: totals, stock coverage and the
// average price rounded to 2 decimals.
type ProductStats struct {
	TotalProducts   int64   `json:"total_products"`
	InStockProducts int64   `json:"in_stock_products"`
	RecentProducts  int     `json:"recent_products"`
	AveragePrice    float64 `json:"average_price"`
}

func NewProductService(products repository.ProductRepository, storage FileStorage) *ProductService {
	return &ProductService{
		products: products,
		storage:  storage,
	}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageName:     req.ImageName,
		Category:      req.Category,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	product, err := s.products.Find(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) ListProducts(inStockOnly bool) ([]models.Product, error) {
	if inStockOnly {
		return s.products.FindInStock()
	}
	return s.products.FindAll()
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	product, err := s.products.Find(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.ImageName != nil {
		product.ImageName = *req.ImageName
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product; cart and order rows referencing it go
// with it through the schema cascades. A stored image is cleaned up too.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	product, err := s.products.Find(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.products.Delete(product); err != nil {
		return err
	}

	if product.ImageName != "" && s.storage != nil {
		if err := s.storage.Delete(product.ImageName); err != nil {
			// The product row is gone; a stale image is not worth failing over.
			return nil
		}
	}
	return nil
}

// AttachImage stores the uploaded file and records its name on the product.
func (s *ProductService) AttachImage(id uuid.UUID, imageName string) (*models.Product, error) {
	product, err := s.products.Find(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.ImageName = imageName
	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetStats() (*ProductStats, error) {
	total, err := s.products.Count()
	if err != nil {
		return nil, err
	}

	inStock, err := s.products.CountInStock()
	if err != nil {
		return nil, err
	}

	recent, err := s.products.FindRecentlyCreated(recentProductWindow)
	if err != nil {
		return nil, err
	}

	avg, err := s.products.AveragePrice()
	if err != nil {
		return nil, err
	}

	return &ProductStats{
		TotalProducts:   total,
		InStockProducts: inStock,
		RecentProducts:  len(recent),
		AveragePrice:    utils.Round2(avg),
	}, nil
}
