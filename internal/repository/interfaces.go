// internal/repository/interfaces.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/models"
)

// Absence is reported as a nil entity, not an error; errors are reserved for
// failures of the store itself.

type UserRepository interface {
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Delete(user *models.User) error
}

type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Find(id uuid.UUID) (*models.Product, error)
	FindAll() ([]models.Product, error)
	FindInStock() ([]models.Product, error)
	FindRecentlyCreated(limit int) ([]models.Product, error)
	Count() (int64, error)
	CountInStock() (int64, error)
	AveragePrice() (float64, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
	Delete(product *models.Product) error
}

type CartItemRepository interface {
	WithTx(tx *gorm.DB) CartItemRepository
	FindByUser(userID uuid.UUID) ([]models.CartItem, error)
	FindByUserAndProduct(userID, productID uuid.UUID) (*models.CartItem, error)
	// FindByUserAndProductForUpdate takes a row lock so the read-modify-write
	// upsert cannot race a concurrent add for the same pair.
	FindByUserAndProductForUpdate(userID, productID uuid.UUID) (*models.CartItem, error)
	TotalByUser(userID uuid.UUID) (float64, error)
	Save(item *models.CartItem) error
	Delete(item *models.CartItem) error
	ClearByUser(userID uuid.UUID) (int64, error)
}

type OrderRepository interface {
	FindByUser(userID uuid.UUID) ([]models.Order, error)
	FindByUserAndID(userID, orderID uuid.UUID) (*models.Order, error)
	FindByUserAndStatus(userID uuid.UUID, status models.OrderStatus) ([]models.Order, error)
	FindRecentByUser(userID uuid.UUID, limit int) ([]models.Order, error)
	TotalByUser(userID uuid.UUID) (float64, error)
	Create(order *models.Order) error
}

type OrderItemRepository interface {
	FindByOrder(orderID uuid.UUID) ([]models.OrderItem, error)
	TotalByOrder(orderID uuid.UUID) (float64, error)
	MostOrderedProducts(limit int) ([]ProductOrderCount, error)
}

// ProductOrderCount is an aggregate row for the best-seller query.
type ProductOrderCount struct {
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	TotalQuantity int64     `json:"total_quantity"`
}
