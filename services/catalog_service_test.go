package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_FetchProducts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Essence Mascara", "price": 9.99, "discountPercentage": 7.17, "rating": 4.94, "stock": 5, "brand": "Essence", "category": "beauty", "shippingInformation": "Ships in 1 month", "returnPolicy": "30 days return policy"},
				{"id": 2, "title": "Mystery Box", "price": 19.99, "discountPercentage": 104.9, "rating": 3.1, "stock": 2, "shippingInformation": "Free shipping", "returnPolicy": "No return policy"}
			],
			"total": 2, "skip": 0, "limit": 50
		}`))
	}))
	defer upstream.Close()

	svc := NewCatalogService(upstream.URL, upstream.Client())
	products, err := svc.FetchProducts(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "beauty", first.Category)
	assert.Equal(t, "Essence", first.Subcategory)
	assert.Equal(t, 7, first.Discount) // rounded from 7.17
	assert.False(t, first.FreeShipping)
	assert.True(t, first.Returnable)

	// Missing brand and category fall back to explicit defaults, the
	// discount clamps to 100, and the flags derive from the policy strings.
	second := products[1]
	assert.Equal(t, "Miscellaneous", second.Category)
	assert.Equal(t, "General", second.Subcategory)
	assert.Equal(t, 100, second.Discount)
	assert.True(t, second.FreeShipping)
	assert.False(t, second.Returnable)
}

func TestCatalogService_FetchProducts_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewCatalogService(upstream.URL, upstream.Client())
	products, err := svc.FetchProducts(context.Background(), 10)

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCatalogService_FetchProduct(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "title": "Desk Chair", "price": 149.5, "brand": "Lumen", "category": "furniture", "rating": 4.3, "freeShipping": true, "returnable": false}`))
	}))
	defer upstream.Close()

	svc := NewCatalogService(upstream.URL, upstream.Client())
	product, err := svc.FetchProduct(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, "Lumen", product.Subcategory)
	// Explicit upstream booleans win over policy-string derivation
	assert.True(t, product.FreeShipping)
	assert.False(t, product.Returnable)
}

func TestCatalogService_FetchProduct_NotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	svc := NewCatalogService(upstream.URL, upstream.Client())
	product, err := svc.FetchProduct(context.Background(), 9999)

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestCatalogService_NormalizationIsDeterministic(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": [{"id": 1, "title": "Widget", "price": 10, "shippingInformation": "Ships overnight", "returnPolicy": "7 days return policy"}], "total": 1, "skip": 0, "limit": 10}`))
	}))
	defer upstream.Close()

	svc := NewCatalogService(upstream.URL, upstream.Client())

	first, err := svc.FetchProducts(context.Background(), 10)
	require.NoError(t, err)
	second, err := svc.FetchProducts(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, first, second)
}
