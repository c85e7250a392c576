package cache

import (
	"sync"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// The catalog is fetched in bulk from the upstream product service and held
// as an immutable snapshot until the TTL lapses. Consumers (the storefront
// handlers, the filter pipeline, the top-rated analytics) all read the same
// snapshot; it is only ever replaced wholesale.

type catalogEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	catalogMu    sync.RWMutex
	catalogCache *catalogEntry
)

func GetCatalog() ([]models.Product, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if catalogCache != nil && time.Since(catalogCache.fetchedAt) < TTL {
		return catalogCache.products, true
	}
	return nil, false
}

func SetCatalog(products []models.Product) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogCache = &catalogEntry{
		products:  products,
		fetchedAt: time.Now(),
	}
}

// InvalidateCatalog drops the snapshot so the next read refetches
func InvalidateCatalog() {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogCache = nil
}
