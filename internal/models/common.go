// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Roles
const (
	RoleUser   = "ROLE_USER"
	RoleSeller = "ROLE_SELLER"
	RoleAdmin  = "ROLE_ADMIN"
)

// OrderStatus is the order lifecycle state. The values are stored verbatim
// and are part of the API contract.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "en_attente"
	OrderStatusPaid      OrderStatus = "payé"
	OrderStatusShipped   OrderStatus = "expédié"
	OrderStatusDelivered OrderStatus = "livré"
	OrderStatusCancelled OrderStatus = "annulé"
)

// ValidOrderStatuses lists every accepted order status.
func ValidOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Quantity bounds shared by cart and order items.
const (
	MinItemQuantity = 1
	MaxItemQuantity = 999
)
