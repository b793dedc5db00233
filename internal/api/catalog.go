package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"grosly/internal/domain" // Importing domain models
	"grosly/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// placeholderImage is served when a product has no image at all
const placeholderImage = "https://via.placeholder.com/150"

// Cache keys for the three catalog projections
const (
	cacheKeyTodaysChoice    = "catalog:todays-choice"
	cacheKeyLimitedDiscount = "catalog:limited-discount"
	cacheKeyCheapest        = "catalog:cheapest"
)

// catalogCacheTTL bounds projection staleness between invalidations
const catalogCacheTTL = 60 * time.Second

// projectionLimit caps every projection at ten products
const projectionLimit = 10

// ProductView is the denormalized product shape served by the catalog reads
type ProductView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PromoPrice  *float64 `json:"promo_price"`
	Stock       int      `json:"stock"`
	CategoryID  string   `json:"category_id"`
	Weight      string   `json:"weight"`
	Image       string   `json:"image"` // Main image, else first image, else placeholder
}

// newProductView flattens a product (with loaded images) into its view shape
func newProductView(p domain.Product) ProductView {
	image := placeholderImage
	if len(p.Images) > 0 {
		image = p.Images[0].ImageURL // Fall back to the first image
		for _, img := range p.Images {
			if img.IsMain {
				image = img.ImageURL // Flagged-main image wins
				break
			}
		}
	}
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PromoPrice:  p.PromoPrice,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Weight:      p.Weight,
		Image:       image,
	}
}

// invalidateCatalogCache drops the cached projections after a catalog write
func invalidateCatalogCache(ctx context.Context, rdb *redis.Client) {
	_ = utils.DeleteCache(ctx, rdb, cacheKeyTodaysChoice, cacheKeyLimitedDiscount, cacheKeyCheapest)
}

// serveCachedProjection returns a cached projection when present, otherwise
// computes, caches, and returns it. Empty catalogs yield an empty list.
func serveCachedProjection(c *gin.Context, rdb *redis.Client, key string, compute func() ([]ProductView, error)) {
	ctx := c.Request.Context()
	var cached []ProductView
	if found, err := utils.GetCache(ctx, rdb, key, &cached); err == nil && found {
		c.JSON(http.StatusOK, cached)
		return
	}
	views, err := compute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	_ = utils.SetCache(ctx, rdb, key, views, catalogCacheTTL)
	c.JSON(http.StatusOK, views)
}

// TodaysChoiceHandler distributes up to ten in-stock products across
// categories: max(1, 10/categoryCount) per category in listing order,
// stopping as soon as ten have accumulated.
func TodaysChoiceHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveCachedProjection(c, rdb, cacheKeyTodaysChoice, func() ([]ProductView, error) {
			var categories []domain.Category
			if err := db.Find(&categories).Error; err != nil {
				return nil, err
			}
			views := make([]ProductView, 0, projectionLimit)
			if len(categories) == 0 {
				return views, nil
			}
			perCategory := projectionLimit / len(categories)
			if perCategory < 1 {
				perCategory = 1
			}
			for _, category := range categories {
				var products []domain.Product
				if err := db.Preload("Images").
					Where("category_id = ? AND stock > 0", category.ID).
					Limit(perCategory).
					Find(&products).Error; err != nil {
					return nil, err
				}
				for _, p := range products {
					views = append(views, newProductView(p))
					if len(views) >= projectionLimit {
						break
					}
				}
				if len(views) >= projectionLimit {
					break
				}
			}
			return views, nil
		})
	}
}

// LimitedDiscountHandler returns up to ten in-stock products carrying a
// promo price, in the store's default order
func LimitedDiscountHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveCachedProjection(c, rdb, cacheKeyLimitedDiscount, func() ([]ProductView, error) {
			var products []domain.Product
			if err := db.Preload("Images").
				Where("promo_price IS NOT NULL AND stock > 0").
				Limit(projectionLimit).
				Find(&products).Error; err != nil {
				return nil, err
			}
			views := make([]ProductView, 0, len(products))
			for _, p := range products {
				views = append(views, newProductView(p))
			}
			return views, nil
		})
	}
}

// CheapestProductsHandler returns up to ten in-stock products ordered by
// effective price: promo price when set, regular price otherwise
func CheapestProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveCachedProjection(c, rdb, cacheKeyCheapest, func() ([]ProductView, error) {
			var products []domain.Product
			if err := db.Preload("Images").
				Where("stock > 0").
				Order("COALESCE(promo_price, price) ASC").
				Limit(projectionLimit).
				Find(&products).Error; err != nil {
				return nil, err
			}
			views := make([]ProductView, 0, len(products))
			for _, p := range products {
				views = append(views, newProductView(p))
			}
			return views, nil
		})
	}
}
