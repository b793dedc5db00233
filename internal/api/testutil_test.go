package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"grosly/internal/config"
	appdb "grosly/internal/db"
	"grosly/internal/domain"
	"grosly/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory database per test to avoid
// cross-test collisions, with the full schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open db")
	require.NoError(t, appdb.AutoMigrate(gdb), "migrate")
	return gdb
}

// newRouter builds a bare gin engine in test mode
func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// testConfig returns token settings for handlers that issue JWTs
func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		AccessMinutes: 15,
		RefreshDays:   7,
	}
}

// performJSON sends a JSON request through the router and records the response
func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "marshal body")
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals a recorded response body into dest
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), "decode response")
}

// seedUser inserts a user with a hashed password and returns it
func seedUser(t *testing.T, gdb *gorm.DB, email, password string) domain.UserProfile {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err, "hash password")
	user := domain.UserProfile{
		FirstName:     "Test",
		LastName:      "User",
		Email:         email,
		Password:      hash,
		Country:       "Morocco",
		TermsAccepted: true,
	}
	require.NoError(t, gdb.Create(&user).Error, "seed user")
	return user
}

// seedCategory inserts a category and returns it
func seedCategory(t *testing.T, gdb *gorm.DB, name string) domain.Category {
	t.Helper()
	category := domain.Category{Name: name, Slug: utils.Slugify(name), IsActive: true}
	require.NoError(t, gdb.Create(&category).Error, "seed category")
	return category
}

// seedProduct inserts a product and returns it
func seedProduct(t *testing.T, gdb *gorm.DB, name, categoryID string, price float64, promo *float64, stock int) domain.Product {
	t.Helper()
	product := domain.Product{
		Name:       name,
		Slug:       utils.Slugify(name),
		Price:      price,
		PromoPrice: promo,
		Stock:      stock,
		IsActive:   true,
		Weight:     "1kg",
		CategoryID: categoryID,
	}
	require.NoError(t, gdb.Create(&product).Error, "seed product")
	return product
}

// seedAddress inserts a delivery address for a user and returns it
func seedAddress(t *testing.T, gdb *gorm.DB, userID string) domain.Address {
	t.Helper()
	address := domain.Address{
		UserID:      userID,
		FullName:    "Test User",
		City:        "Casablanca",
		Country:     "Morocco",
		AddressLine: "12 rue des Orangers",
	}
	require.NoError(t, gdb.Create(&address).Error, "seed address")
	return address
}

// floatPtr is a literal helper for optional promo prices
func floatPtr(v float64) *float64 { return &v }
