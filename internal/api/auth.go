package api

import (
	"net/http" // HTTP status codes

	"grosly/internal/config" // Token lifetimes and secret
	"grosly/internal/domain" // Importing domain models
	"grosly/internal/utils"  // Password and JWT utilities

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// LoginRequest carries the credentials for token issuance
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Login identity
	Password string `json:"password" binding:"required"`    // Plaintext password, verified against the stored hash
}

// RefreshRequest carries a refresh token to rotate
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// authenticate looks a user up by email and verifies the password.
// A missing user and a failed match both yield nil, never an error.
func authenticate(db *gorm.DB, email, password string) *domain.UserProfile {
	var user domain.UserProfile
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil
	}
	return &user
}

// LoginHandler verifies credentials and issues an access+refresh token pair
func LoginHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user := authenticate(db, req.Email, req.Password)
		if user == nil {
			// Missing user and bad password are indistinguishable to the caller
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
			return
		}
		pair, err := utils.GenerateTokenPair(user.ID, cfg.JWTSecret, cfg.AccessMinutes, cfg.RefreshDays)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

// RefreshTokenHandler rotates a valid refresh token into a brand-new pair.
// There is no revocation list: the old pair simply ages out.
func RefreshTokenHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		claims, err := utils.ParseJWT(req.RefreshToken, cfg.JWTSecret)
		// An access token presented here is rejected even when validly signed
		if err != nil || claims.TokenType != utils.TokenTypeRefresh || claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}
		var user domain.UserProfile // The subject must still exist
		if err := db.First(&user, "id = ?", claims.Subject).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		pair, err := utils.GenerateTokenPair(user.ID, cfg.JWTSecret, cfg.AccessMinutes, cfg.RefreshDays)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

// CurrentUserHandler returns the profile of the authenticated subject
func CurrentUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Set by the JWT middleware
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.UserProfile
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
