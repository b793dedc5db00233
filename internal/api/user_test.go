package api

import (
	"net/http"
	"testing"

	"grosly/internal/domain"
	"grosly/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequiresTerms(t *testing.T) {
	gdb := setupTestDB(t)

	r := newRouter()
	r.POST("/users", CreateUserHandler(gdb))

	w := performJSON(t, r, http.MethodPost, "/users", map[string]any{
		"first_name":     "Amina",
		"last_name":      "Benali",
		"email":          "amina@example.com",
		"password":       "s3cret-passw0rd",
		"country":        "Morocco",
		"terms_accepted": false,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserHashesPassword(t *testing.T) {
	gdb := setupTestDB(t)

	r := newRouter()
	r.POST("/users", CreateUserHandler(gdb))

	w := performJSON(t, r, http.MethodPost, "/users", map[string]any{
		"first_name":     "Amina",
		"last_name":      "Benali",
		"email":          "amina@example.com",
		"password":       "s3cret-passw0rd",
		"country":        "Morocco",
		"terms_accepted": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var stored domain.UserProfile
	require.NoError(t, gdb.Where("email = ?", "amina@example.com").First(&stored).Error)
	assert.NotEqual(t, "s3cret-passw0rd", stored.Password, "plaintext must never be stored")
	assert.True(t, utils.VerifyPassword("s3cret-passw0rd", stored.Password))

	// The hash never leaks in responses
	assert.NotContains(t, w.Body.String(), stored.Password)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	gdb := setupTestDB(t)
	seedUser(t, gdb, "amina@example.com", "s3cret-passw0rd")

	r := newRouter()
	r.POST("/users", CreateUserHandler(gdb))

	w := performJSON(t, r, http.MethodPost, "/users", map[string]any{
		"first_name":     "Other",
		"last_name":      "Person",
		"email":          "amina@example.com",
		"password":       "another-passw0rd",
		"country":        "France",
		"terms_accepted": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	gdb := setupTestDB(t)
	user := seedUser(t, gdb, "amina@example.com", "s3cret-passw0rd")

	r := newRouter()
	r.PUT("/users/:id", UpdateUserHandler(gdb))

	w := performJSON(t, r, http.MethodPut, "/users/"+user.ID, map[string]any{
		"password": "brand-new-passw0rd",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated domain.UserProfile
	require.NoError(t, gdb.First(&updated, "id = ?", user.ID).Error)
	assert.False(t, utils.VerifyPassword("s3cret-passw0rd", updated.Password), "old password no longer matches")
	assert.True(t, utils.VerifyPassword("brand-new-passw0rd", updated.Password))
	assert.Equal(t, user.Email, updated.Email, "untouched fields survive")
}

func TestDeleteUser(t *testing.T) {
	gdb := setupTestDB(t)
	user := seedUser(t, gdb, "amina@example.com", "s3cret-passw0rd")

	r := newRouter()
	r.DELETE("/users/:id", DeleteUserHandler(gdb))

	w := performJSON(t, r, http.MethodDelete, "/users/"+user.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performJSON(t, r, http.MethodDelete, "/users/"+user.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReviewValidatesRating(t *testing.T) {
	gdb := setupTestDB(t)
	user := seedUser(t, gdb, "amina@example.com", "s3cret-passw0rd")
	category := seedCategory(t, gdb, "Fruits")
	product := seedProduct(t, gdb, "Oranges", category.ID, 8, nil, 10)

	r := newRouter()
	r.POST("/reviews", CreateReviewHandler(gdb))
	r.GET("/products/:id/reviews", ListProductReviewsHandler(gdb))

	// Out-of-range ratings are rejected before persistence
	for _, rating := range []int{0, 6, -1} {
		w := performJSON(t, r, http.MethodPost, "/reviews", map[string]any{
			"user_id":    user.ID,
			"product_id": product.ID,
			"rating":     rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d must be rejected", rating)
	}

	w := performJSON(t, r, http.MethodPost, "/reviews", map[string]any{
		"user_id":    user.ID,
		"product_id": product.ID,
		"rating":     4,
		"comment":    "Juicy and fresh",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(t, r, http.MethodGet, "/products/"+product.ID+"/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []domain.Review
	decodeJSON(t, w, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}

func TestCreateAndListAddresses(t *testing.T) {
	gdb := setupTestDB(t)
	user := seedUser(t, gdb, "amina@example.com", "s3cret-passw0rd")
	other := seedUser(t, gdb, "karim@example.com", "another-passw0rd")

	r := newRouter()
	r.POST("/addresses", CreateAddressHandler(gdb))
	r.GET("/users/:id/addresses", ListUserAddressesHandler(gdb))

	w := performJSON(t, r, http.MethodPost, "/addresses", map[string]any{
		"user_id":      user.ID,
		"full_name":    "Amina Benali",
		"city":         "Casablanca",
		"country":      "Morocco",
		"address_line": "12 rue des Orangers",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Listing is scoped to the owning user
	w = performJSON(t, r, http.MethodGet, "/users/"+user.ID+"/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var addresses []domain.Address
	decodeJSON(t, w, &addresses)
	assert.Len(t, addresses, 1)

	w = performJSON(t, r, http.MethodGet, "/users/"+other.ID+"/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &addresses)
	assert.Empty(t, addresses)
}
