package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main fetches the upstream catalog and reports what the storefront will see
// after boundary normalization.
// Usage: go run cmd/catalogcheck/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VERDANT STOREFRONT - Catalog Check")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	baseURL := os.Getenv("CATALOG_BASE_URL")
	if baseURL == "" {
		baseURL = "https://dummyjson.com"
	}

	catalog := services.NewCatalogService(baseURL, &http.Client{Timeout: 15 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := catalog.FetchProducts(ctx, 100)
	if err != nil {
		log.Fatalf("❌ Catalog fetch failed: %v", err)
	}
	log.Printf("✓ Fetched %d products from %s", len(products), baseURL)

	if len(products) == 0 {
		fmt.Println("Catalog is empty — nothing to report")
		return
	}

	minPrice, maxPrice := products[0].Price, products[0].Price
	freeShipping, returnable := 0, 0
	byCategory := make(map[string]int)

	for _, p := range products {
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
		if p.FreeShipping {
			freeShipping++
		}
		if p.Returnable {
			returnable++
		}
		byCategory[p.Category]++
	}

	fmt.Printf("\nPrice range:   $%.2f – $%.2f\n", minPrice, maxPrice)
	fmt.Printf("Free shipping: %d of %d\n", freeShipping, len(products))
	fmt.Printf("Returnable:    %d of %d\n", returnable, len(products))

	categories := make([]string, 0, len(byCategory))
	for name := range byCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	fmt.Println("\nProducts per category:")
	for _, name := range categories {
		fmt.Printf("  %-24s %d\n", name, byCategory[name])
	}
}
