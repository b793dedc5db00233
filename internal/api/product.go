package api

import (
	"net/http" // HTTP status codes

	"grosly/internal/domain" // Importing domain models
	"grosly/internal/utils"  // Slug generation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client for cache invalidation
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
	"gorm.io/gorm/clause"          // Association-aware deletes
)

// CreateProductRequest carries the fields for a new product
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Slug        string   `json:"slug"` // Derived from the name when absent
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	PromoPrice  *float64 `json:"promo_price" binding:"omitempty,gt=0"`
	Stock       int      `json:"stock" binding:"gte=0"`
	IsActive    *bool    `json:"is_active"` // Defaults to active
	Weight      string   `json:"weight"`
	CategoryID  string   `json:"category_id" binding:"required"`
}

// UpdateProductRequest carries optional product updates
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	PromoPrice  *float64 `json:"promo_price"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
	Weight      *string  `json:"weight"`
	CategoryID  *string  `json:"category_id"`
}

// AddProductImageRequest attaches an image to a product
type AddProductImageRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
	IsMain   bool   `json:"is_main"`
}

// CreateProductHandler creates a product, deriving the slug from the name
// when the caller does not supply one
func CreateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Referenced category must exist
		var category domain.Category
		if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		slug := req.Slug
		if slug == "" {
			slug = utils.Slugify(req.Name)
		}
		product := domain.Product{
			Name:        req.Name,
			Slug:        slug,
			Description: req.Description,
			Price:       req.Price,
			PromoPrice:  req.PromoPrice,
			Stock:       req.Stock,
			IsActive:    true,
			Weight:      req.Weight,
			CategoryID:  req.CategoryID,
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}
		if product.Weight == "" {
			product.Weight = "1kg"
		}
		// Duplicate slug trips the unique constraint
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product slug already exists"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"product_id": product.ID,
			"slug":       product.Slug,
		}).Info("Product created")
		invalidateCatalogCache(c.Request.Context(), rdb)
		c.JSON(http.StatusCreated, product)
	}
}

// ListProductsHandler returns the denormalized view of every product
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []domain.Product
		// Images are loaded in the same round trip to resolve the display image
		if err := db.Preload("Images").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
			return
		}
		views := make([]ProductView, 0, len(products))
		for _, p := range products {
			views = append(views, newProductView(p))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GetProductHandler returns a product by id with its images
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := db.Preload("Images").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// UpdateProductHandler applies partial product updates
func UpdateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		var req UpdateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.PromoPrice != nil {
			product.PromoPrice = req.PromoPrice
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}
		if req.Weight != nil {
			product.Weight = *req.Weight
		}
		if req.CategoryID != nil {
			product.CategoryID = *req.CategoryID
		}
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update product"})
			return
		}
		invalidateCatalogCache(c.Request.Context(), rdb)
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler removes a product and all of its images
func DeleteProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		// Cascade is enforced here rather than left to the database so it
		// holds on every backend the store runs against
		if err := db.Select(clause.Associations).Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		invalidateCatalogCache(c.Request.Context(), rdb)
		c.Status(http.StatusNoContent)
	}
}

// AddProductImageHandler attaches an image to a product
func AddProductImageHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		var req AddProductImageRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		image := domain.ProductImage{
			ProductID: product.ID,
			ImageURL:  req.ImageURL,
			IsMain:    req.IsMain,
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
			return
		}
		invalidateCatalogCache(c.Request.Context(), rdb)
		c.JSON(http.StatusCreated, image)
	}
}

// ListProductImagesHandler returns every image of a product
func ListProductImagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var images []domain.ProductImage
		if err := db.Where("product_id = ?", c.Param("id")).Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list images"})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}
