package api

import (
	"net/http" // HTTP status codes

	"grosly/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// CreateAddressRequest carries a new delivery address
type CreateAddressRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	FullName    string `json:"full_name" binding:"required"`
	Phone       string `json:"phone"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
	AddressLine string `json:"address_line" binding:"required"`
}

// CreateAddressHandler records a delivery address for a user
func CreateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAddressRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Owning user must exist
		var user domain.UserProfile
		if err := db.First(&user, "id = ?", req.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		address := domain.Address{
			UserID:      req.UserID,
			FullName:    req.FullName,
			Phone:       req.Phone,
			City:        req.City,
			Country:     req.Country,
			AddressLine: req.AddressLine,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// ListUserAddressesHandler returns every address of a user
func ListUserAddressesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []domain.Address
		if err := db.Where("user_id = ?", c.Param("id")).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}
