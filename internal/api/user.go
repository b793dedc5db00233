package api

import (
	"net/http" // HTTP status codes

	"grosly/internal/domain" // Importing domain models
	"grosly/internal/utils"  // Password hashing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateUserRequest carries the fields for account registration
type CreateUserRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	PhoneNumber   string `json:"phone_number"`
	Country       string `json:"country" binding:"required"`
	DialCode      string `json:"dial_code"`
	AddressLine   string `json:"address_line"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// UpdateUserRequest carries optional profile updates; nil fields are untouched
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=8"` // Re-hashed before storage
	PhoneNumber *string `json:"phone_number"`
	Country     *string `json:"country"`
	DialCode    *string `json:"dial_code"`
	AddressLine *string `json:"address_line"`
}

// CreateUserHandler registers a new user profile
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Registration is refused until the terms are accepted
		if !req.TermsAccepted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Terms and conditions must be accepted"})
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.UserProfile{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Password:      hash,
			PhoneNumber:   req.PhoneNumber,
			Country:       req.Country,
			DialCode:      req.DialCode,
			AddressLine:   req.AddressLine,
			TermsAccepted: req.TermsAccepted,
		}
		// Duplicate email trips the unique constraint
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"email":   user.Email,
		}).Info("User registered")
		c.JSON(http.StatusCreated, user)
	}
}

// GetUserHandler returns a user profile by id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.UserProfile
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUserHandler applies partial profile updates; a supplied password is re-hashed
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.UserProfile
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Apply only the supplied fields
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.PhoneNumber != nil {
			user.PhoneNumber = *req.PhoneNumber
		}
		if req.Country != nil {
			user.Country = *req.Country
		}
		if req.DialCode != nil {
			user.DialCode = *req.DialCode
		}
		if req.AddressLine != nil {
			user.AddressLine = *req.AddressLine
		}
		if req.Password != nil {
			hash, err := utils.HashPassword(*req.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			user.Password = hash
		}
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler removes a user profile
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.UserProfile
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
