// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/repository"
)

func TestListOrders(t *testing.T) {
	orders := new(mockOrderRepository)
	items := new(mockOrderItemRepository)
	svc := NewOrderService(orders, items)

	userID := uuid.New()
	history := []models.Order{
		{Total: 3699.97, Status: models.OrderStatusPaid},
		{Total: 699.99, Status: models.OrderStatusShipped},
	}
	orders.On("FindByUser", userID).Return(history, nil)
	orders.On("TotalByUser", userID).Return(4399.960000000001, nil)

	list, err := svc.ListOrders(userID)
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalOrders)
	assert.Equal(t, 4399.96, list.TotalSpent)
}

func TestGetOrderWithItems(t *testing.T) {
	orders := new(mockOrderRepository)
	items := new(mockOrderItemRepository)
	svc := NewOrderService(orders, items)

	userID := uuid.New()
	order := &models.Order{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Total:     1299.99,
		Status:    models.OrderStatusPaid,
	}
	lines := []models.OrderItem{
		{OrderID: order.ID, Quantity: 1, UnitPrice: 1299.99},
	}
	orders.On("FindByUserAndID", userID, order.ID).Return(order, nil)
	items.On("FindByOrder", order.ID).Return(lines, nil)
	items.On("TotalByOrder", order.ID).Return(1299.99, nil)

	detail, err := svc.GetOrder(userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.ItemsCount)
	assert.Equal(t, 1299.99, detail.CalculatedTotal)
	assert.Equal(t, order.ID, detail.Order.ID)
}

func TestGetOrderOwnedByAnotherUser(t *testing.T) {
	orders := new(mockOrderRepository)
	svc := NewOrderService(orders, new(mockOrderItemRepository))

	userID := uuid.New()
	orderID := uuid.New()

	// The scoped lookup returns nothing whether the order belongs to someone
	// else or does not exist at all.
	orders.On("FindByUserAndID", userID, orderID).Return(nil, nil)

	_, err := svc.GetOrder(userID, orderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListByStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(new(mockOrderRepository), new(mockOrderItemRepository))

	_, err := svc.ListByStatus(uuid.New(), models.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListByStatus(t *testing.T) {
	orders := new(mockOrderRepository)
	svc := NewOrderService(orders, new(mockOrderItemRepository))

	userID := uuid.New()
	expected := []models.Order{{Status: models.OrderStatusShipped}}
	orders.On("FindByUserAndStatus", userID, models.OrderStatusShipped).Return(expected, nil)

	got, err := svc.ListByStatus(userID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMostOrderedProductsDefaultsLimit(t *testing.T) {
	items := new(mockOrderItemRepository)
	svc := NewOrderService(new(mockOrderRepository), items)

	items.On("MostOrderedProducts", 10).Return([]repository.ProductOrderCount{
		{Name: "iPhone 15 Pro", TotalQuantity: 3},
	}, nil)

	rows, err := svc.MostOrderedProducts(0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].TotalQuantity)
}

func TestListRecentDefaultsLimit(t *testing.T) {
	orders := new(mockOrderRepository)
	svc := NewOrderService(orders, new(mockOrderItemRepository))

	userID := uuid.New()
	orders.On("FindRecentByUser", userID, DefaultRecentOrderLimit).Return([]models.Order{}, nil)

	_, err := svc.ListRecent(userID, 0)
	require.NoError(t, err)
	orders.AssertExpectations(t)
}
