// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/doniphane/clickandship/internal/config"
	"github.com/doniphane/clickandship/internal/handlers"
	"github.com/doniphane/clickandship/internal/middleware"
	"github.com/doniphane/clickandship/internal/repository"
	"github.com/doniphane/clickandship/internal/services"
	"github.com/doniphane/clickandship/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize services
	storage, err := services.NewFileStorage(cfg)
	if err != nil {
		logrus.WithError(err).Warn("File storage unavailable, falling back to local disk")
		storage = services.NewLocalStorage(cfg.Storage.UploadDir)
	}
	authorizationService := services.NewAuthorizationService()
	authService := services.NewAuthService(userRepo, cfg)
	productService := services.NewProductService(productRepo, storage)
	cartService := services.NewCartService(db, cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, authorizationService, storage)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Locally stored product images are served off disk in development.
	if cfg.Environment != "production" {
		r.Static("/uploads", cfg.Storage.UploadDir)
	}

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("")
		auth.Use(middleware.AuthRateLimit(cfg.RateLimit))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/users", authHandler.CreateUser)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/profile", middleware.AuthRequired(), authHandler.Profile)
		api.DELETE("/profile", middleware.AuthRequired(), authHandler.DeleteAccount)

		// Product routes: catalog reads are public, mutations are gated
		// inside the handler on seller or admin roles.
		products := api.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.ListProducts)
			products.GET("/popular", orderHandler.PopularProducts)
			products.GET("/stats", productHandler.GetStats)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.POST("/:id/image", middleware.UploadRateLimit(cfg.RateLimit), productHandler.UploadImage)
			}
		}

		// Cart routes
		cart := api.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/add", cartHandler.AddToCart)
			cart.POST("/remove", cartHandler.RemoveFromCart)
			cart.POST("/clear", cartHandler.ClearCart)
		}

		// Order routes
		orders := api.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/recent", orderHandler.ListRecentOrders)
			orders.GET("/status/:status", orderHandler.ListOrdersByStatus)
			orders.GET("/:id", orderHandler.GetOrder)
		}
	}

	return r
}
