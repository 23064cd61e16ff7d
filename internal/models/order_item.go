// internal/models/order_item.go
package models

import "github.com/google/uuid"

// OrderItem is a line of an order. UnitPrice is the product price captured
// when the order was placed, not a live link to Product.Price.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitPrice float64   `json:"unit_price" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Order   Order   `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product Product `json:"product" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (oi *OrderItem) TotalPrice() float64 {
	return oi.UnitPrice * float64(oi.Quantity)
}
