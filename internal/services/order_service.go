// internal/services/order_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/repository"
	"github.com/doniphane/clickandship/internal/utils"
)

// DefaultRecentOrderLimit caps the recent-orders listing.
const DefaultRecentOrderLimit = 5

// OrderService serves the read paths over a user's order history. No order
// is created through the authenticated surface; orders enter the store via
// the seeder only.
type OrderService struct {
	orders     repository.OrderRepository
	orderItems repository.OrderItemRepository
}

// OrderList is a user's orders newest first plus derived aggregates.
type OrderList struct {
	Orders      []models.Order `json:"orders"`
	TotalOrders int            `json:"total_orders"`
	TotalSpent  float64        `json:"total_spent"`
}

// OrderDetail is one order with its items and a total recomputed from the
// items, reported alongside the stored total as an independent cross-check.
type OrderDetail struct {
	Order           models.Order       `json:"order"`
	Items           []models.OrderItem `json:"order_items"`
	ItemsCount      int                `json:"items_count"`
	CalculatedTotal float64            `json:"calculated_total"`
}

func NewOrderService(orders repository.OrderRepository, orderItems repository.OrderItemRepository) *OrderService {
	return &OrderService{
		orders:     orders,
		orderItems: orderItems,
	}
}

// ListOrders returns every order of the user, newest first, with the count
// and the sum of stored totals.
func (s *OrderService) ListOrders(userID uuid.UUID) (*OrderList, error) {
	orders, err := s.orders.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	totalSpent, err := s.orders.TotalByUser(userID)
	if err != nil {
		return nil, err
	}

	return &OrderList{
		Orders:      orders,
		TotalOrders: len(orders),
		TotalSpent:  utils.Round2(totalSpent),
	}, nil
}

// GetOrder returns one order of the user with its items. An order that does
// not exist and an order owned by someone else are both reported as not
// found, so callers cannot probe for other users' orders.
func (s *OrderService) GetOrder(userID, orderID uuid.UUID) (*OrderDetail, error) {
	order, err := s.orders.FindByUserAndID(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	items, err := s.orderItems.FindByOrder(order.ID)
	if err != nil {
		return nil, err
	}

	calculated, err := s.orderItems.TotalByOrder(order.ID)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		Order:           *order,
		Items:           items,
		ItemsCount:      len(items),
		CalculatedTotal: utils.Round2(calculated),
	}, nil
}

// ListByStatus returns the user's orders carrying the given status, newest
// first. The status must be one of the accepted values.
func (s *OrderService) ListByStatus(userID uuid.UUID, status models.OrderStatus) ([]models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: valid statuses: %v", ErrInvalidStatus, models.ValidOrderStatuses())
	}
	return s.orders.FindByUserAndStatus(userID, status)
}

// ListRecent returns the newest orders of the user, capped at limit
// (DefaultRecentOrderLimit when limit is not positive).
func (s *OrderService) ListRecent(userID uuid.UUID, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = DefaultRecentOrderLimit
	}
	return s.orders.FindRecentByUser(userID, limit)
}

// MostOrderedProducts returns the best sellers across all orders.
func (s *OrderService) MostOrderedProducts(limit int) ([]repository.ProductOrderCount, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.orderItems.MostOrderedProducts(limit)
}
