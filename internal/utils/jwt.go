package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenTypeRefresh tags refresh tokens; access tokens carry no type claim
const TokenTypeRefresh = "refresh"

// JWT Claims
type Claims struct {
	TokenType            string `json:"type,omitempty"` // "refresh" on refresh tokens only
	jwt.RegisteredClaims        // Standard JWT claims (sub, exp, iat)
}

// TokenPair bundles the access and refresh tokens issued together
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // Always "bearer"
}

// GenerateAccessToken creates a short-lived JWT for a given subject id
func GenerateAccessToken(subjectID, secret string, expireMinutes int) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,                                                                      // Subject is the user id
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireMinutes) * time.Minute)), // Configurable expiry in minutes
			IssuedAt:  jwt.NewNumericDate(time.Now()),                                                 // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// GenerateRefreshToken creates a long-lived JWT tagged type=refresh
func GenerateRefreshToken(subjectID, secret string, expireDays int) (string, error) {
	claims := Claims{
		TokenType: TokenTypeRefresh, // Refresh tokens carry an explicit type
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireDays) * 24 * time.Hour)), // Configurable expiry in days
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateTokenPair issues a fresh access+refresh pair for a subject
func GenerateTokenPair(subjectID, secret string, accessMinutes, refreshDays int) (*TokenPair, error) {
	access, err := GenerateAccessToken(subjectID, secret, accessMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := GenerateRefreshToken(subjectID, secret, refreshDays)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors (bad signature, expired, malformed)
	if err != nil {
		return nil, err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
