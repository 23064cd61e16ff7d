// internal/services/mocks_test.go
package services

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/repository"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) Delete(user *models.User) error {
	return m.Called(user).Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) WithTx(tx *gorm.DB) repository.ProductRepository {
	return m
}

func (m *mockProductRepository) Find(id uuid.UUID) (*models.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) FindAll() ([]models.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) FindInStock() ([]models.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) FindRecentlyCreated(limit int) ([]models.Product, error) {
	args := m.Called(limit)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) CountInStock() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) AveragePrice() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepository) Save(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepository) Delete(product *models.Product) error {
	return m.Called(product).Error(0)
}

type mockCartItemRepository struct {
	mock.Mock
}

func (m *mockCartItemRepository) WithTx(tx *gorm.DB) repository.CartItemRepository {
	return m
}

func (m *mockCartItemRepository) FindByUser(userID uuid.UUID) ([]models.CartItem, error) {
	args := m.Called(userID)
	items, _ := args.Get(0).([]models.CartItem)
	return items, args.Error(1)
}

func (m *mockCartItemRepository) FindByUserAndProduct(userID, productID uuid.UUID) (*models.CartItem, error) {
	args := m.Called(userID, productID)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *mockCartItemRepository) FindByUserAndProductForUpdate(userID, productID uuid.UUID) (*models.CartItem, error) {
	args := m.Called(userID, productID)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *mockCartItemRepository) TotalByUser(userID uuid.UUID) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockCartItemRepository) Save(item *models.CartItem) error {
	return m.Called(item).Error(0)
}

func (m *mockCartItemRepository) Delete(item *models.CartItem) error {
	return m.Called(item).Error(0)
}

func (m *mockCartItemRepository) ClearByUser(userID uuid.UUID) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByUser(userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(userID)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindByUserAndID(userID, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(userID, orderID)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepository) FindByUserAndStatus(userID uuid.UUID, status models.OrderStatus) ([]models.Order, error) {
	args := m.Called(userID, status)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindRecentByUser(userID uuid.UUID, limit int) ([]models.Order, error) {
	args := m.Called(userID, limit)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) TotalByUser(userID uuid.UUID) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockOrderRepository) Create(order *models.Order) error {
	return m.Called(order).Error(0)
}

type mockOrderItemRepository struct {
	mock.Mock
}

func (m *mockOrderItemRepository) FindByOrder(orderID uuid.UUID) ([]models.OrderItem, error) {
	args := m.Called(orderID)
	items, _ := args.Get(0).([]models.OrderItem)
	return items, args.Error(1)
}

func (m *mockOrderItemRepository) TotalByOrder(orderID uuid.UUID) (float64, error) {
	args := m.Called(orderID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockOrderItemRepository) MostOrderedProducts(limit int) ([]repository.ProductOrderCount, error) {
	args := m.Called(limit)
	rows, _ := args.Get(0).([]repository.ProductOrderCount)
	return rows, args.Error(1)
}
