// internal/repository/cart_item_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doniphane/clickandship/internal/models"
)

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &cartItemRepository{db: db}
}

func (r *cartItemRepository) WithTx(tx *gorm.DB) CartItemRepository {
	return &cartItemRepository{db: tx}
}

func (r *cartItemRepository) FindByUser(userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}
	return items, nil
}

func (r *cartItemRepository) FindByUserAndProduct(userID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return &item, nil
}

func (r *cartItemRepository) FindByUserAndProductForUpdate(userID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock cart item: %w", err)
	}
	return &item, nil
}

func (r *cartItemRepository) TotalByUser(userID uuid.UUID) (float64, error) {
	var total float64
	if err := r.db.Model(&models.CartItem{}).
		Select("COALESCE(SUM(cart_items.quantity * products.price), 0)").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to compute cart total: %w", err)
	}
	return total, nil
}

func (r *cartItemRepository) Save(item *models.CartItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	return nil
}

func (r *cartItemRepository) Delete(item *models.CartItem) error {
	if err := r.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (r *cartItemRepository) ClearByUser(userID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", result.Error)
	}
	return result.RowsAffected, nil
}
