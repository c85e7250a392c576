package product_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/store/products?"+rawQuery, nil)
	return c
}

func TestParsePagination_Defaults(t *testing.T) {
	page, limit := parsePagination(contextWithQuery(t, ""))

	assert.Equal(t, 1, page)
	assert.Equal(t, 12, limit)
}

func TestParsePagination_Clamps(t *testing.T) {
	page, limit := parsePagination(contextWithQuery(t, "page=-3&limit=500"))

	assert.Equal(t, 1, page)
	assert.Equal(t, 12, limit)
}

func TestParseCriteria_AbsentParamsStayUnset(t *testing.T) {
	criteria := parseCriteria(contextWithQuery(t, ""))

	assert.Empty(t, criteria.Category)
	assert.Nil(t, criteria.MinPrice)
	assert.Nil(t, criteria.MaxPrice)
	assert.Nil(t, criteria.MinDiscount)
	assert.Nil(t, criteria.MinRating)
	assert.False(t, criteria.FreeShipping)
	assert.False(t, criteria.Returnable)
}

func TestParseCriteria_FullQuery(t *testing.T) {
	criteria := parseCriteria(contextWithQuery(t,
		"category=electronics&subcategory=Apex&minPrice=50&maxPrice=800&discount=15&rating=4&freeShipping=true&returnable=false&q=phone"))

	assert.Equal(t, "electronics", criteria.Category)
	assert.Equal(t, "Apex", criteria.Subcategory)
	require.NotNil(t, criteria.MinPrice)
	assert.Equal(t, 50.0, *criteria.MinPrice)
	require.NotNil(t, criteria.MaxPrice)
	assert.Equal(t, 800.0, *criteria.MaxPrice)
	require.NotNil(t, criteria.MinDiscount)
	assert.Equal(t, 15, *criteria.MinDiscount)
	require.NotNil(t, criteria.MinRating)
	assert.Equal(t, 4.0, *criteria.MinRating)
	assert.True(t, criteria.FreeShipping)
	assert.False(t, criteria.Returnable)
	assert.Equal(t, "phone", criteria.Query)
}

func TestParseCriteria_IgnoresMalformedNumbers(t *testing.T) {
	criteria := parseCriteria(contextWithQuery(t, "minPrice=abc&rating=high"))

	assert.Nil(t, criteria.MinPrice)
	assert.Nil(t, criteria.MinRating)
}

func TestPaginate(t *testing.T) {
	products := make([]models.Product, 25)
	for i := range products {
		products[i].ID = int64(i + 1)
	}

	page, meta := paginate(products, 2, 10)

	require.Len(t, page, 10)
	assert.Equal(t, int64(11), page[0].ID)
	assert.Equal(t, int64(20), page[9].ID)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestPaginate_LastPageIsShort(t *testing.T) {
	products := make([]models.Product, 25)

	page, _ := paginate(products, 3, 10)

	assert.Len(t, page, 5)
}

func TestPaginate_PastTheEnd(t *testing.T) {
	products := make([]models.Product, 5)

	page, meta := paginate(products, 9, 10)

	assert.Empty(t, page)
	assert.Equal(t, 5, meta.Total)
}
