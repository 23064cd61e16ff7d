// internal/repository/product_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/models"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepository{db: tx}
}

func (r *productRepository) Find(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (r *productRepository) FindInStock() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("stock_quantity > 0").Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch in-stock products: %w", err)
	}
	return products, nil
}

func (r *productRepository) FindRecentlyCreated(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent products: %w", err)
	}
	return products, nil
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *productRepository) CountInStock() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("stock_quantity > 0").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count in-stock products: %w", err)
	}
	return count, nil
}

func (r *productRepository) AveragePrice() (float64, error) {
	var avg float64
	if err := r.db.Model(&models.Product{}).
		Select("COALESCE(AVG(price), 0)").Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("failed to compute average price: %w", err)
	}
	return avg, nil
}

func (r *productRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) Save(product *models.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *productRepository) Delete(product *models.Product) error {
	if err := r.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
