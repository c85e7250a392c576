package cache

import (
	"testing"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCache_SetAndGet(t *testing.T) {
	t.Cleanup(InvalidateCatalog)

	products := []models.Product{{ID: 1, Title: "Widget"}}
	SetCatalog(products)

	got, ok := GetCatalog()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestCatalogCache_MissWhenEmpty(t *testing.T) {
	InvalidateCatalog()

	got, ok := GetCatalog()
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCatalogCache_Invalidate(t *testing.T) {
	SetCatalog([]models.Product{{ID: 1}})

	InvalidateCatalog()

	_, ok := GetCatalog()
	assert.False(t, ok)
}

func TestCatalogCache_ExpiresAfterTTL(t *testing.T) {
	t.Cleanup(InvalidateCatalog)

	catalogMu.Lock()
	catalogCache = &catalogEntry{
		products:  []models.Product{{ID: 1}},
		fetchedAt: time.Now().Add(-TTL - time.Second),
	}
	catalogMu.Unlock()

	_, ok := GetCatalog()
	assert.False(t, ok)
}
