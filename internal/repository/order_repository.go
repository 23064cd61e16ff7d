// internal/repository/order_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/models"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) FindByUserAndID(userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("user_id = ? AND id = ?", userID, orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) FindByUserAndStatus(userID uuid.UUID, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders by status: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) FindRecentByUser(userID uuid.UUID, limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) TotalByUser(userID uuid.UUID) (float64, error) {
	var total float64
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to compute order total: %w", err)
	}
	return total, nil
}

func (r *orderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
