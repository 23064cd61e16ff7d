// internal/repository/order_item_repository.go
package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/models"
)

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) FindByOrder(orderID uuid.UUID) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Preload("Product").
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}
	return items, nil
}

func (r *orderItemRepository) TotalByOrder(orderID uuid.UUID) (float64, error) {
	var total float64
	if err := r.db.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(unit_price * quantity), 0)").
		Where("order_id = ?", orderID).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to compute order item total: %w", err)
	}
	return total, nil
}

func (r *orderItemRepository) MostOrderedProducts(limit int) ([]ProductOrderCount, error) {
	var rows []ProductOrderCount
	if err := r.db.Model(&models.OrderItem{}).
		Select("products.id AS product_id, products.name AS name, SUM(order_items.quantity) AS total_quantity").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.id, products.name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch most ordered products: %w", err)
	}
	return rows, nil
}
