package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a finalized checkout, recorded after the external checkout
// service accepts the cart. Orders feed the admin analytics series.
type Order struct {
	ID          uuid.UUID  `json:"id"`
	OrderNumber string     `json:"order_number"`
	UserEmail   string     `json:"user_email"`
	Items       []CartLine `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ItemCount returns the total quantity across all lines
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
