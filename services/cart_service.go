package services

import (
	"sync"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
)

// CartService holds the authoritative in-memory cart for every user.
//
// Every operation is synchronous and total: operating on an absent line
// (remove/increment/decrement of an unknown product id) is a defined no-op,
// never an error. Authentication gating happens at the HTTP boundary — the
// middleware rejects anonymous cart mutations before they reach this service.
//
// Lines are kept in insertion order, matching what the storefront renders.
// The RWMutex gives the single-writer guarantee the original client store got
// for free from its event loop.
type CartService struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLine // user email -> lines
}

var (
	cartService     *CartService
	cartServiceOnce sync.Once
)

// GetCartService returns the shared cart service
func GetCartService() *CartService {
	cartServiceOnce.Do(func() {
		cartService = NewCartService()
	})
	return cartService
}

// NewCartService creates an empty cart service (tests construct their own)
func NewCartService() *CartService {
	return &CartService{carts: make(map[string][]models.CartLine)}
}

// Add merges the line into the user's cart: if a line for the product id
// already exists its quantity grows by the requested amount, otherwise a new
// line is appended. A requested quantity below 1 defaults to 1.
func (s *CartService) Add(userEmail string, line models.CartLine) models.CartSnapshot {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userEmail]
	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	s.carts[userEmail] = lines

	return snapshotLocked(lines)
}

// Remove deletes the line for the product id; no-op when absent
func (s *CartService) Remove(userEmail string, productID int64) models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userEmail]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	s.carts[userEmail] = lines

	return snapshotLocked(lines)
}

// Increment raises the line's quantity by one; no-op when absent
func (s *CartService) Increment(userEmail string, productID int64) models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userEmail]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			break
		}
	}

	return snapshotLocked(lines)
}

// Decrement lowers the line's quantity by one, floored at 1. A quantity-1
// line stays at 1 — it is not removed; removal is a distinct action.
// No-op when the line is absent.
func (s *CartService) Decrement(userEmail string, productID int64) models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userEmail]
	for i := range lines {
		if lines[i].ProductID == productID {
			if lines[i].Quantity > 1 {
				lines[i].Quantity--
			}
			break
		}
	}

	return snapshotLocked(lines)
}

// Clear empties the user's cart
func (s *CartService) Clear(userEmail string) models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userEmail)
	return snapshotLocked(nil)
}

// Snapshot returns a copy of the user's cart with the total recomputed
// from the current lines.
func (s *CartService) Snapshot(userEmail string) models.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshotLocked(s.carts[userEmail])
}

// snapshotLocked copies the lines and derives the total. The total is a pure
// function of the lines — it is never cached between calls.
func snapshotLocked(lines []models.CartLine) models.CartSnapshot {
	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return models.CartSnapshot{Items: items, Total: total}
}
