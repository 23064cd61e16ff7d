// internal/models/cart_item.go
package models

import "github.com/google/uuid"

// CartItem holds a product and its quantity in a user's cart. At most one
// row exists per (user, product) pair; adds are folded into the existing row.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_items_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null"`

	// Relationships
	User    User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product Product `json:"product" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TotalPrice is the line total at the product's current price.
func (ci *CartItem) TotalPrice() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
