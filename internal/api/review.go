package api

import (
	"net/http" // HTTP status codes

	"grosly/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// CreateReviewRequest carries a product review
type CreateReviewRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	ProductID string `json:"product_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"` // Ratings outside 1..5 are rejected
	Comment   string `json:"comment"`                               // Optional
}

// CreateReviewHandler records a review for a product
func CreateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReviewRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Reviewed product must exist
		var product domain.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		review := domain.Review{
			UserID:    req.UserID,
			ProductID: req.ProductID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// ListProductReviewsHandler returns every review of a product
func ListProductReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []domain.Review
		if err := db.Where("product_id = ?", c.Param("id")).Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
