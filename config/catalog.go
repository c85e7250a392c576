package config

import (
	"log"
	"net/http"
	"strconv"
	"time"
)

// External service endpoints. The product catalog and the checkout/payment
// provider are outside collaborators; this process only consumes them.
var (
	CatalogBaseURL  string
	CheckoutURL     string
	CatalogFetchMax int

	// HTTPClient is shared by the catalog and checkout clients
	HTTPClient *http.Client
)

func InitExternalServices() {
	CatalogBaseURL = getEnv("CATALOG_BASE_URL", "https://dummyjson.com")
	CheckoutURL = getEnv("CHECKOUT_URL", "http://localhost:3000/api/cart/checkout")

	CatalogFetchMax = 100
	if raw := getEnv("CATALOG_FETCH_MAX", ""); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			CatalogFetchMax = n
		} else {
			log.Printf("⚠️  invalid CATALOG_FETCH_MAX %q, using default %d", raw, CatalogFetchMax)
		}
	}

	HTTPClient = &http.Client{Timeout: 15 * time.Second}

	log.Println("✅ External services configured:", CatalogBaseURL)
}
