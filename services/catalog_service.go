package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/cache"
	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
)

// CatalogService is the client for the external product-listing service.
// Records are normalized at this boundary — the filter pipeline only ever
// sees the validated storefront shape.
type CatalogService struct {
	baseURL string
	client  *http.Client
}

var catalogService *CatalogService

// GetCatalogService returns the catalog client configured at boot
func GetCatalogService() *CatalogService {
	if catalogService == nil {
		catalogService = NewCatalogService(config.CatalogBaseURL, config.HTTPClient)
	}
	return catalogService
}

func NewCatalogService(baseURL string, client *http.Client) *CatalogService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CatalogService{baseURL: baseURL, client: client}
}

// Products returns the current catalog snapshot, fetching from the upstream
// service when the cached snapshot has expired. A failed fetch is logged and
// yields an empty snapshot — there is no retry; the next request refetches.
func (s *CatalogService) Products(ctx context.Context) []models.Product {
	if snapshot, ok := cache.GetCatalog(); ok {
		return snapshot
	}

	products, err := s.FetchProducts(ctx, config.CatalogFetchMax)
	if err != nil {
		log.Printf("[catalog] fetch failed: %v", err)
		return nil
	}

	cache.SetCatalog(products)
	return products
}

// FetchProducts requests up to limit products from the upstream bulk endpoint
func (s *CatalogService) FetchProducts(ctx context.Context, limit int) ([]models.Product, error) {
	url := fmt.Sprintf("%s/products?limit=%d", s.baseURL, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", res.StatusCode)
	}

	var payload models.ProductListPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog payload: %w", err)
	}

	products := make([]models.Product, 0, len(payload.Products))
	for _, raw := range payload.Products {
		products = append(products, raw.Normalize())
	}

	return products, nil
}

// FetchProduct looks up a single product by id, with its image gallery
func (s *CatalogService) FetchProduct(ctx context.Context, id int64) (*models.Product, error) {
	url := fmt.Sprintf("%s/products/%d", s.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup returned status %d", res.StatusCode)
	}

	var raw models.RawProduct
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode product payload: %w", err)
	}

	product := raw.Normalize()
	return &product, nil
}
