// internal/models/order.go
package models

import "github.com/google/uuid"

type Order struct {
	BaseModel
	UserID uuid.UUID   `json:"-" gorm:"type:uuid;not null;index"`
	Total  float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	Status OrderStatus `json:"status" gorm:"type:varchar(50);not null;default:'en_attente'"`

	// Relationships
	User       User        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// CalculateTotal sums the line totals of the loaded order items.
func (o *Order) CalculateTotal() float64 {
	total := 0.0
	for i := range o.OrderItems {
		total += o.OrderItems[i].TotalPrice()
	}
	return total
}

// UpdateTotal stores the freshly computed item sum into Total.
func (o *Order) UpdateTotal() {
	o.Total = o.CalculateTotal()
}
