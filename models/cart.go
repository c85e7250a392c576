package models

// CartLine is one product's quantity entry within a cart. At most one line
// exists per product id; quantity stays >= 1 for as long as the line exists.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"` // unit price
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Route     string  `json:"route,omitempty"` // origin route, for navigating back to the product
}

// CartSnapshot is a point-in-time copy of a user's cart. Total is always
// recomputed from the lines when the snapshot is taken, never stored.
type CartSnapshot struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddToCartRequest struct {
	ProductID int64   `json:"product_id" binding:"required" example:"1"`
	Title     string  `json:"title" binding:"required" example:"Smartphone"`
	Price     float64 `json:"price" binding:"omitempty,min=0" example:"499.99"`
	Image     string  `json:"image"`
	Route     string  `json:"route"`
	Quantity  int     `json:"quantity" binding:"omitempty,min=1" example:"1"`
}

type CheckoutResponse struct {
	URL         string `json:"url"`
	OrderNumber string `json:"order_number"`
}
