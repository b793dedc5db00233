package api

import (
	"net/http" // HTTP status codes

	"grosly/internal/domain" // Importing domain models
	"grosly/internal/utils"  // Slug generation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client for cache invalidation
	"gorm.io/gorm"                 // GORM ORM library
)

// CreateCategoryRequest carries the fields for a new category
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"` // Defaults to active
}

// UpdateCategoryRequest carries optional category updates
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// CreateCategoryHandler creates a category with a name-derived slug
func CreateCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category := domain.Category{
			Name:     req.Name,
			Slug:     utils.Slugify(req.Name), // Slug always derived from the name
			IsActive: true,
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}
		// Duplicate slug trips the unique constraint
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category slug already exists"})
			return
		}
		invalidateCatalogCache(c.Request.Context(), rdb)
		c.JSON(http.StatusCreated, category)
	}
}

// ListCategoriesHandler returns every category in listing order
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []domain.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryHandler returns a category by id
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category domain.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// UpdateCategoryHandler applies partial category updates
func UpdateCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category domain.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		var req UpdateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Name != nil {
			category.Name = *req.Name
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}
		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update category"})
			return
		}
		invalidateCatalogCache(c.Request.Context(), rdb)
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategoryHandler removes a category. Its products are NOT deleted:
// their category_id keeps pointing at the removed row.
func DeleteCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category domain.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		invalidateCatalogCache(c.Request.Context(), rdb)
		c.Status(http.StatusNoContent)
	}
}
