package main

import (
	"context" // context package is needed for the Redis ping
	"log"     // log package is needed for logging
	"time"    // CORS max age

	"grosly/internal/api"        // Custom package for API handlers
	"grosly/internal/config"     // Custom package for configuration
	"grosly/internal/middleware" // Custom package for middleware

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/postgres"      // Postgres driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration, fatal on missing required values

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client for the catalog projection cache; the API serves
	// uncached when no address is configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_ADDR not set, catalog cache disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes: registration, token flows, catalog reads
	r.POST("/users", api.CreateUserHandler(db))
	r.POST("/auth/login", api.LoginHandler(db, cfg))
	r.POST("/auth/refresh", api.RefreshTokenHandler(db, cfg))

	r.GET("/categories", api.ListCategoriesHandler(db))
	r.GET("/categories/:id", api.GetCategoryHandler(db))
	r.GET("/products", api.ListProductsHandler(db))
	// Fixed-path projections are registered next to /products/:id; gin
	// resolves static segments ahead of the parameterized route
	r.GET("/products/todays-choice", api.TodaysChoiceHandler(db, redisClient))
	r.GET("/products/limited-discount", api.LimitedDiscountHandler(db, redisClient))
	r.GET("/products/cheapest", api.CheapestProductsHandler(db, redisClient))
	r.GET("/products/:id", api.GetProductHandler(db))
	r.GET("/products/:id/images", api.ListProductImagesHandler(db))
	r.GET("/products/:id/reviews", api.ListProductReviewsHandler(db))

	// Protected routes (JWT access token required)
	auth := r.Group("")
	auth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	auth.GET("/auth/me", api.CurrentUserHandler(db))

	auth.GET("/users/:id", api.GetUserHandler(db))
	auth.PUT("/users/:id", api.UpdateUserHandler(db))
	auth.DELETE("/users/:id", api.DeleteUserHandler(db))
	auth.GET("/users/:id/addresses", api.ListUserAddressesHandler(db))
	auth.POST("/addresses", api.CreateAddressHandler(db))

	auth.POST("/categories", api.CreateCategoryHandler(db, redisClient))
	auth.PUT("/categories/:id", api.UpdateCategoryHandler(db, redisClient))
	auth.DELETE("/categories/:id", api.DeleteCategoryHandler(db, redisClient))

	auth.POST("/products", api.CreateProductHandler(db, redisClient))
	auth.PUT("/products/:id", api.UpdateProductHandler(db, redisClient))
	auth.DELETE("/products/:id", api.DeleteProductHandler(db, redisClient))
	auth.POST("/products/:id/images", api.AddProductImageHandler(db, redisClient))

	auth.GET("/cart/user/:user_id", api.GetCartHandler(db)) // Creates the cart on first access
	auth.POST("/cart/items", api.AddCartItemHandler(db))
	auth.DELETE("/cart/:id", api.ClearCartHandler(db))

	auth.POST("/orders", api.CreateOrderHandler(db))
	auth.POST("/payments", api.CreatePaymentHandler(db))
	auth.POST("/reviews", api.CreateReviewHandler(db))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
