package services

import (
	"sync"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
)

// OrderLog keeps the orders recorded from successful checkouts. It is the
// source the admin analytics series are computed from.
type OrderLog struct {
	mu     sync.RWMutex
	orders []models.Order
}

var (
	orderLog     *OrderLog
	orderLogOnce sync.Once
)

// GetOrderLog returns the shared order log
func GetOrderLog() *OrderLog {
	orderLogOnce.Do(func() {
		orderLog = NewOrderLog()
	})
	return orderLog
}

func NewOrderLog() *OrderLog {
	return &OrderLog{}
}

// Record appends a finalized order
func (l *OrderLog) Record(order models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, order)
}

// All returns a copy of every recorded order, oldest first
func (l *OrderLog) All() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	orders := make([]models.Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

// Since returns a copy of the orders created at or after the cutoff
func (l *OrderLog) Since(cutoff time.Time) []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var orders []models.Order
	for _, order := range l.orders {
		if !order.CreatedAt.Before(cutoff) {
			orders = append(orders, order)
		}
	}
	return orders
}
