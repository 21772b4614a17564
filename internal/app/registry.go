package app

import (
	"database/sql"

	"shopping-cart-api/internal/cart"
	"shopping-cart-api/internal/customer"
	"shopping-cart-api/internal/messaging/kafka/producer"
	"shopping-cart-api/internal/middleware"
	"shopping-cart-api/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client, kafkaWriter *kafka.Writer, logger *zap.Logger) {
	// --- Repositories ---
	customerRepo := customer.NewRepository(db)
	productRepo := product.NewRepository(db)
	cartRepo := cart.NewRepository(db)

	// --- Services ---
	customerService := customer.NewService(customerRepo, logger.Named("customer.service"))
	productService := product.NewService(productRepo)
	cartService := cart.NewService(cart.Deps{
		DB:        db,
		Repo:      cartRepo,
		Customers: customerRepo,
		Products:  productRepo,
		Events:    producer.New(kafkaWriter),
		Logger:    logger.Named("cart.service"),
	})

	// --- Handlers ---
	customerHandler := customer.NewHandler(customerService)
	productHandler := product.NewHandler(productService)
	cartHandler := cart.NewHandler(cartService)

	limiter := middleware.NewRateLimiter(rdb, logger.Named("middleware.ratelimit"))

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	{
		customer.RegisterRoutes(api, customerHandler, limiter)
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
	}
}
