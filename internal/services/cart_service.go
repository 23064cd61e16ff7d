// internal/services/cart_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/repository"
	"github.com/doniphane/clickandship/internal/utils"
)

type CartService struct {
	db       *gorm.DB
	carts    repository.CartItemRepository
	products repository.ProductRepository
}

// CartSnapshot is the derived view of a user's cart: its items newest first,
// the item count and the price total rounded to 2 decimals.
type CartSnapshot struct {
	Items      []models.CartItem `json:"cart_items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

// AddedProduct echoes the product and quantity of the add that just happened.
type AddedProduct struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
}

// RemovedProduct echoes the product that was just taken out of the cart.
type RemovedProduct struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewCartService(db *gorm.DB, carts repository.CartItemRepository, products repository.ProductRepository) *CartService {
	return &CartService{
		db:       db,
		carts:    carts,
		products: products,
	}
}

// GetCart returns the user's cart snapshot.
func (s *CartService) GetCart(userID uuid.UUID) (*CartSnapshot, error) {
	items, err := s.carts.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	total, err := s.carts.TotalByUser(userID)
	if err != nil {
		return nil, err
	}

	return &CartSnapshot{
		Items:      items,
		TotalItems: len(items),
		TotalPrice: utils.Round2(total),
	}, nil
}

// AddToCart puts quantity units of a product into the user's cart. If the
// product is already there, the quantities are folded into the existing row
// under a row lock, so the stock check always sees the combined post-add
// quantity against the current persisted state.
func (s *CartService) AddToCart(userID, productID uuid.UUID, quantity int) (*CartSnapshot, *AddedProduct, error) {
	if quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}

	var added AddedProduct

	err := s.db.Transaction(func(tx *gorm.DB) error {
		products := s.products.WithTx(tx)
		carts := s.carts.WithTx(tx)

		product, err := products.Find(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		existing, err := carts.FindByUserAndProductForUpdate(userID, productID)
		if err != nil {
			return err
		}

		newQuantity := quantity
		if existing != nil {
			newQuantity += existing.Quantity
		}

		if product.StockQuantity < newQuantity {
			return fmt.Errorf("%w: available %d", ErrInsufficientStock, product.StockQuantity)
		}
		if newQuantity > models.MaxItemQuantity {
			return fmt.Errorf("%w: quantity must be between %d and %d",
				ErrInvalidArgument, models.MinItemQuantity, models.MaxItemQuantity)
		}

		if existing != nil {
			existing.Quantity = newQuantity
			if err := carts.Save(existing); err != nil {
				return err
			}
		} else {
			item := &models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := carts.Save(item); err != nil {
				return err
			}
		}

		added = AddedProduct{
			ID:       product.ID,
			Name:     product.Name,
			Quantity: quantity,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := s.GetCart(userID)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, &added, nil
}

// RemoveFromCart deletes the cart row matching the product.
func (s *CartService) RemoveFromCart(userID, productID uuid.UUID) (*CartSnapshot, *RemovedProduct, error) {
	product, err := s.products.Find(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, ErrProductNotFound
	}

	item, err := s.carts.FindByUserAndProduct(userID, productID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, ErrCartItemNotFound
	}

	if err := s.carts.Delete(item); err != nil {
		return nil, nil, err
	}

	snapshot, err := s.GetCart(userID)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, &RemovedProduct{ID: product.ID, Name: product.Name}, nil
}

// ClearCart empties the user's cart in one statement and reports how many
// rows were removed. Clearing an already empty cart removes 0 rows.
func (s *CartService) ClearCart(userID uuid.UUID) (int64, error) {
	return s.carts.ClearByUser(userID)
}
