// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name          string  `json:"name" gorm:"size:255;not null"`
	Description   string  `json:"description,omitempty" gorm:"type:text"`
	Price         float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int     `json:"stock_quantity" gorm:"not null;default:0"`
	ImageName     string  `json:"image_name,omitempty" gorm:"size:255"`
	Category      string  `json:"category,omitempty" gorm:"size:255;index"`
}

func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}
