package models

import "strings"

// ═══════════════════════════════════════════════════════════
// Upstream (raw) product record
// ═══════════════════════════════════════════════════════════

// RawProduct is the record shape returned by the upstream product-listing
// service. Optional fields the storefront needs (free shipping, returnable)
// may be absent and are synthesized at this boundary, never inside the
// filter pipeline.
type RawProduct struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	DiscountPercentage  float64  `json:"discountPercentage"`
	Rating              float64  `json:"rating"`
	Stock               int      `json:"stock"`
	Brand               string   `json:"brand"`
	Category            string   `json:"category"`
	Thumbnail           string   `json:"thumbnail"`
	Images              []string `json:"images"`
	FreeShipping        *bool    `json:"freeShipping,omitempty"`
	Returnable          *bool    `json:"returnable,omitempty"`
	ShippingInformation string   `json:"shippingInformation,omitempty"`
	ReturnPolicy        string   `json:"returnPolicy,omitempty"`
}

// ProductListPayload is the envelope the upstream bulk endpoint returns
type ProductListPayload struct {
	Products []RawProduct `json:"products"`
	Total    int          `json:"total"`
	Skip     int          `json:"skip"`
	Limit    int          `json:"limit"`
}

// ═══════════════════════════════════════════════════════════
// Normalized storefront product
// ═══════════════════════════════════════════════════════════

// Product is the validated, normalized shape every storefront consumer sees.
// Records are created once per catalog fetch and never mutated afterwards.
type Product struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"` // brand-derived
	Discount     int      `json:"discount"`    // percentage, 0-100
	Rating       float64  `json:"rating"`      // 0-5
	Stock        int      `json:"stock"`
	FreeShipping bool     `json:"free_shipping"`
	Returnable   bool     `json:"returnable"`
	Thumbnail    string   `json:"thumbnail"`
	Images       []string `json:"images"`
}

// Normalize converts an upstream record into the storefront shape.
//
// Missing optional fields get explicit defaults here: category falls back to
// "Miscellaneous", subcategory is derived from the brand ("General" when the
// brand is empty), and the shipping/return flags are derived deterministically
// from the upstream policy strings when the booleans are not supplied. The
// same raw record always normalizes to the same product.
func (r RawProduct) Normalize() Product {
	category := r.Category
	if category == "" {
		category = "Miscellaneous"
	}

	subcategory := r.Brand
	if subcategory == "" {
		subcategory = "General"
	}

	discount := int(r.DiscountPercentage + 0.5)
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}

	freeShipping := false
	if r.FreeShipping != nil {
		freeShipping = *r.FreeShipping
	} else if r.ShippingInformation != "" {
		freeShipping = strings.Contains(strings.ToLower(r.ShippingInformation), "free")
	}

	returnable := false
	if r.Returnable != nil {
		returnable = *r.Returnable
	} else if r.ReturnPolicy != "" {
		returnable = !strings.EqualFold(r.ReturnPolicy, "No return policy")
	}

	return Product{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Category:     category,
		Subcategory:  subcategory,
		Discount:     discount,
		Rating:       r.Rating,
		Stock:        r.Stock,
		FreeShipping: freeShipping,
		Returnable:   returnable,
		Thumbnail:    r.Thumbnail,
		Images:       r.Images,
	}
}
