package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"grosly/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
	"gorm.io/gorm/clause"      // Conflict-tolerant inserts
)

// AddCartItemRequest appends one line to a user's cart
type AddCartItemRequest struct {
	UserID    string  `json:"user_id" binding:"required,uuid"`
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"` // Non-positive quantities are rejected
	Price     float64 `json:"price" binding:"required,gt=0"`    // Caller-supplied snapshot, not re-derived
}

// getOrCreateCart fetches the user's cart, creating an empty one on first
// access. The unique index on user_id plus the conflict-tolerant insert keep
// two concurrent first accesses from creating two carts.
func getOrCreateCart(db *gorm.DB, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	// Lose the race and the insert is a no-op; the re-read below wins either way
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Cart{UserID: userID}).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCartHandler returns the user's cart with its items, creating the cart
// on first access. Repeat calls yield the same cart id.
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := getOrCreateCart(db, c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if err := db.Preload("Items").First(cart, "id = ?", cart.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// AddCartItemHandler appends a new line to the user's cart. Repeated adds of
// the same product create separate lines; lines are never merged.
func AddCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Referenced product must exist
		var product domain.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		cart, err := getOrCreateCart(db, req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		item := domain.CartItem{
			CartID:    cart.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Price:     req.Price, // Snapshot independent of the product's current price
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// ClearCartHandler deletes every item under a cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart domain.Cart
		if err := db.First(&cart, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		if err := db.Where("cart_id = ?", cart.ID).Delete(&domain.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
