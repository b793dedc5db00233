package api

import (
	"fmt"
	"net/http"
	"testing"

	"grosly/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodaysChoiceDistributesAcrossCategories(t *testing.T) {
	gdb := setupTestDB(t)
	// Three categories with four in-stock products each: perCategory is
	// max(1, 10/3) = 3, so the projection fills to exactly ten
	categoryIDs := make(map[string]bool)
	for i := 0; i < 3; i++ {
		category := seedCategory(t, gdb, fmt.Sprintf("Category %d", i))
		categoryIDs[category.ID] = false
		for j := 0; j < 4; j++ {
			seedProduct(t, gdb, fmt.Sprintf("Product %d-%d", i, j), category.ID, 10, nil, 5)
		}
	}

	r := newRouter()
	r.GET("/products/todays-choice", TodaysChoiceHandler(gdb, nil))

	w := performJSON(t, r, http.MethodGet, "/products/todays-choice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []ProductView
	decodeJSON(t, w, &views)
	require.Len(t, views, 10)
	for _, v := range views {
		categoryIDs[v.CategoryID] = true
	}
	for id, seen := range categoryIDs {
		assert.True(t, seen, "category %s missing from the selection", id)
	}
}

func TestTodaysChoiceSkipsOutOfStock(t *testing.T) {
	gdb := setupTestDB(t)
	category := seedCategory(t, gdb, "Fruits")
	seedProduct(t, gdb, "In Stock", category.ID, 10, nil, 5)
	seedProduct(t, gdb, "Sold Out", category.ID, 10, nil, 0)

	r := newRouter()
	r.GET("/products/todays-choice", TodaysChoiceHandler(gdb, nil))

	w := performJSON(t, r, http.MethodGet, "/products/todays-choice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []ProductView
	decodeJSON(t, w, &views)
	for _, v := range views {
		assert.Greater(t, v.Stock, 0)
	}
}

func TestTodaysChoiceEmptyCatalog(t *testing.T) {
	gdb := setupTestDB(t)

	r := newRouter()
	r.GET("/products/todays-choice", TodaysChoiceHandler(gdb, nil))

	w := performJSON(t, r, http.MethodGet, "/products/todays-choice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []ProductView
	decodeJSON(t, w, &views)
	assert.Empty(t, views, "empty catalog yields an empty list, not an error")
}

func TestLimitedDiscountOnlyPromoInStock(t *testing.T) {
	gdb := setupTestDB(t)
	category := seedCategory(t, gdb, "Fruits")
	discounted := seedProduct(t, gdb, "Discounted", category.ID, 20, floatPtr(12), 5)
	seedProduct(t, gdb, "Full Price", category.ID, 20, nil, 5)
	seedProduct(t, gdb, "Discounted Sold Out", category.ID, 20, floatPtr(12), 0)

	r := newRouter()
	r.GET("/products/limited-discount", LimitedDiscountHandler(gdb, nil))

	w := performJSON(t, r, http.MethodGet, "/products/limited-discount", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []ProductView
	decodeJSON(t, w, &views)
	require.Len(t, views, 1)
	assert.Equal(t, discounted.ID, views[0].ID)
}

func TestCheapestOrdersByEffectivePrice(t *testing.T) {
	gdb := setupTestDB(t)
	category := seedCategory(t, gdb, "Fruits")
	regular := seedProduct(t, gdb, "Regular Twenty", category.ID, 20, nil, 5)
	// Higher list price, but the promo makes it effectively cheapest
	promoted := seedProduct(t, gdb, "Promoted Thirty", category.ID, 30, floatPtr(5), 5)

	r := newRouter()
	r.GET("/products/cheapest", CheapestProductsHandler(gdb, nil))

	w := performJSON(t, r, http.MethodGet, "/products/cheapest", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []ProductView
	decodeJSON(t, w, &views)
	require.Len(t, views, 2)
	assert.Equal(t, promoted.ID, views[0].ID, "promo price 5 ranks before regular price 20")
	assert.Equal(t, regular.ID, views[1].ID)
}

func TestProductViewImageFallback(t *testing.T) {
	promo := 9.5
	base := domain.Product{ID: "p1", Name: "Oranges", Price: 12, PromoPrice: &promo, Stock: 4, CategoryID: "c1", Weight: "1kg"}

	// No images at all: placeholder
	view := newProductView(base)
	assert.Equal(t, placeholderImage, view.Image)

	// First image when none is flagged main
	withImages := base
	withImages.Images = []domain.ProductImage{
		{ImageURL: "https://cdn.example.com/first.jpg"},
		{ImageURL: "https://cdn.example.com/second.jpg"},
	}
	view = newProductView(withImages)
	assert.Equal(t, "https://cdn.example.com/first.jpg", view.Image)

	// Flagged-main image wins regardless of position
	withMain := base
	withMain.Images = []domain.ProductImage{
		{ImageURL: "https://cdn.example.com/first.jpg"},
		{ImageURL: "https://cdn.example.com/main.jpg", IsMain: true},
	}
	view = newProductView(withMain)
	assert.Equal(t, "https://cdn.example.com/main.jpg", view.Image)

	// The rest of the view mirrors the product fields
	assert.Equal(t, base.ID, view.ID)
	require.NotNil(t, view.PromoPrice)
	assert.Equal(t, promo, *view.PromoPrice)
}
