// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/models"
)

// Seed loads the demo catalog, two accounts and a sample order history.
// It is a no-op when any user already exists, so it is safe to run on
// every start of a development instance.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if userCount > 0 {
		logrus.Info("Seed skipped: users already present")
		return nil
	}

	return WithTransaction(db, func(tx *gorm.DB) error {
		admin := &models.User{
			Email: "admin@clickandship.com",
			Roles: pq.StringArray{models.RoleAdmin},
		}
		if err := admin.SetPassword("admin123"); err != nil {
			return err
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}

		testUser := &models.User{
			Email: "test@example.com",
			Roles: pq.StringArray{models.RoleUser},
		}
		if err := testUser.SetPassword("password123"); err != nil {
			return err
		}
		if err := tx.Create(testUser).Error; err != nil {
			return fmt.Errorf("failed to seed test user: %w", err)
		}

		products := seedProducts()
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return fmt.Errorf("failed to seed product %q: %w", products[i].Name, err)
			}
		}

		cartItems := []models.CartItem{
			{UserID: testUser.ID, ProductID: products[0].ID, Quantity: 2},
			{UserID: testUser.ID, ProductID: products[1].ID, Quantity: 1},
			{UserID: testUser.ID, ProductID: products[2].ID, Quantity: 3},
		}
		for i := range cartItems {
			if err := tx.Create(&cartItems[i]).Error; err != nil {
				return fmt.Errorf("failed to seed cart item: %w", err)
			}
		}

		orders := []struct {
			status models.OrderStatus
			items  []models.OrderItem
		}{
			{
				status: models.OrderStatusPaid,
				items: []models.OrderItem{
					{ProductID: products[0].ID, Quantity: 1, UnitPrice: products[0].Price},
					{ProductID: products[1].ID, Quantity: 2, UnitPrice: products[1].Price},
				},
			},
			{
				status: models.OrderStatusShipped,
				items: []models.OrderItem{
					{ProductID: products[2].ID, Quantity: 1, UnitPrice: products[2].Price},
					{ProductID: products[3].ID, Quantity: 1, UnitPrice: products[3].Price},
					{ProductID: products[4].ID, Quantity: 3, UnitPrice: products[4].Price},
				},
			},
			{
				status: models.OrderStatusPending,
				items: []models.OrderItem{
					{ProductID: products[5].ID, Quantity: 1, UnitPrice: products[5].Price},
				},
			},
			{
				status: models.OrderStatusDelivered,
				items: []models.OrderItem{
					{ProductID: products[0].ID, Quantity: 2, UnitPrice: products[0].Price},
					{ProductID: products[6].ID, Quantity: 1, UnitPrice: products[6].Price},
				},
			},
		}

		for _, o := range orders {
			order := &models.Order{
				UserID: testUser.ID,
				Status: o.status,
			}
			for _, item := range o.items {
				order.Total += item.UnitPrice * float64(item.Quantity)
			}
			if err := tx.Create(order).Error; err != nil {
				return fmt.Errorf("failed to seed order: %w", err)
			}

			for i := range o.items {
				o.items[i].OrderID = order.ID
				if err := tx.Create(&o.items[i]).Error; err != nil {
					return fmt.Errorf("failed to seed order item: %w", err)
				}
			}
		}

		logrus.WithFields(logrus.Fields{
			"users":    2,
			"products": len(products),
			"orders":   len(orders),
		}).Info("Seed data loaded")
		return nil
	})
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			Name:          "iPhone 15 Pro",
			Description:   "Le dernier iPhone avec puce A17 Pro, appareil photo professionnel et design en titane.",
			Price:         1199.99,
			StockQuantity: 25,
			ImageName:     "iphone15pro.jpg",
			Category:      "smartphones",
		},
		{
			Name:          "MacBook Air M2",
			Description:   "Ordinateur portable ultra-léger avec puce M2, parfait pour la productivité.",
			Price:         1299.99,
			StockQuantity: 15,
			ImageName:     "macbook-air-m2.jpg",
			Category:      "ordinateurs",
		},
		{
			Name:          "iPad Air",
			Description:   "Tablette polyvalente avec puce M1, idéale pour le travail et les loisirs.",
			Price:         699.99,
			StockQuantity: 30,
			ImageName:     "ipad-air.jpg",
			Category:      "tablettes",
		},
		{
			Name:          "AirPods Pro",
			Description:   "Écouteurs sans fil avec réduction de bruit active et audio spatial.",
			Price:         249.99,
			StockQuantity: 50,
			ImageName:     "airpods-pro.jpg",
			Category:      "audio",
		},
		{
			Name:          "Apple Watch Series 9",
			Description:   "Montre connectée avec suivi santé avancé et design élégant.",
			Price:         399.99,
			StockQuantity: 20,
			ImageName:     "apple-watch-series9.jpg",
			Category:      "montres",
		},
		{
			Name:          "iMac 24\"",
			Description:   "Ordinateur tout-en-un avec écran Retina 4.5K et puce M1.",
			Price:         1499.99,
			StockQuantity: 10,
			ImageName:     "imac-24.jpg",
			Category:      "ordinateurs",
		},
		{
			Name:          "Magic Keyboard",
			Description:   "Clavier sans fil avec design minimaliste et touches rétroéclairées.",
			Price:         99.99,
			StockQuantity: 40,
			ImageName:     "magic-keyboard.jpg",
			Category:      "accessoires",
		},
		{
			Name:          "Magic Mouse",
			Description:   "Souris sans fil avec surface tactile et design ergonomique.",
			Price:         79.99,
			StockQuantity: 35,
			ImageName:     "magic-mouse.jpg",
			Category:      "accessoires",
		},
	}
}
