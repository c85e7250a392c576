package services

import (
	"testing"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id int64, price float64, qty int) models.CartLine {
	return models.CartLine{ProductID: id, Title: "Product", Price: price, Quantity: qty}
}

func TestCartService_Add_NewLine(t *testing.T) {
	cart := NewCartService()

	snapshot := cart.Add("alice@example.com", line(1, 10, 3))

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, int64(1), snapshot.Items[0].ProductID)
	assert.Equal(t, 3, snapshot.Items[0].Quantity)
	assert.Equal(t, 30.0, snapshot.Total)
}

func TestCartService_Add_MergesQuantities(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 2))

	snapshot := cart.Add("alice@example.com", line(1, 10, 3))

	// Still exactly one line for the id, quantities merged
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 5, snapshot.Items[0].Quantity)
	assert.Equal(t, 50.0, snapshot.Total)
}

func TestCartService_Add_DefaultsQuantityToOne(t *testing.T) {
	cart := NewCartService()

	snapshot := cart.Add("alice@example.com", line(1, 10, 0))

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
}

func TestCartService_Add_PreservesInsertionOrder(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(3, 1, 1))
	cart.Add("alice@example.com", line(1, 1, 1))
	snapshot := cart.Add("alice@example.com", line(2, 1, 1))

	require.Len(t, snapshot.Items, 3)
	assert.Equal(t, int64(3), snapshot.Items[0].ProductID)
	assert.Equal(t, int64(1), snapshot.Items[1].ProductID)
	assert.Equal(t, int64(2), snapshot.Items[2].ProductID)
}

func TestCartService_Remove(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 1))
	cart.Add("alice@example.com", line(2, 5, 2))

	snapshot := cart.Remove("alice@example.com", 1)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, int64(2), snapshot.Items[0].ProductID)
	assert.Equal(t, 10.0, snapshot.Total)
}

func TestCartService_Remove_AbsentIsNoOp(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 2))

	snapshot := cart.Remove("alice@example.com", 99)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, 20.0, snapshot.Total)
}

func TestCartService_Increment(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 1))

	snapshot := cart.Increment("alice@example.com", 1)

	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, 20.0, snapshot.Total)
}

func TestCartService_Increment_AbsentIsNoOp(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 1))

	snapshot := cart.Increment("alice@example.com", 42)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
}

func TestCartService_Decrement(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 3))

	snapshot := cart.Decrement("alice@example.com", 1)

	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, 20.0, snapshot.Total)
}

func TestCartService_Decrement_FloorsAtOne(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 1))

	snapshot := cart.Decrement("alice@example.com", 1)

	// The line stays at quantity 1 — it is not removed and never hits 0
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
	assert.Equal(t, 10.0, snapshot.Total)
}

func TestCartService_Decrement_AbsentIsNoOp(t *testing.T) {
	cart := NewCartService()

	snapshot := cart.Decrement("alice@example.com", 7)

	assert.Empty(t, snapshot.Items)
	assert.Zero(t, snapshot.Total)
}

func TestCartService_Clear(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 2))
	cart.Add("alice@example.com", line(2, 5, 1))

	snapshot := cart.Clear("alice@example.com")

	assert.Empty(t, snapshot.Items)
	assert.Zero(t, snapshot.Total)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 1))
	cart.Add("bob@example.com", line(2, 5, 4))

	alice := cart.Snapshot("alice@example.com")
	bob := cart.Snapshot("bob@example.com")

	require.Len(t, alice.Items, 1)
	require.Len(t, bob.Items, 1)
	assert.Equal(t, int64(1), alice.Items[0].ProductID)
	assert.Equal(t, int64(2), bob.Items[0].ProductID)
}

func TestCartService_SnapshotIsACopy(t *testing.T) {
	cart := NewCartService()
	cart.Add("alice@example.com", line(1, 10, 1))

	snapshot := cart.Snapshot("alice@example.com")
	snapshot.Items[0].Quantity = 99

	assert.Equal(t, 1, cart.Snapshot("alice@example.com").Items[0].Quantity)
}

// End-to-end walk through: total is recomputed from current lines at every
// step, never cached.
func TestCartService_Scenario(t *testing.T) {
	cart := NewCartService()
	user := "ayush@gmail.com"

	snapshot := cart.Add(user, line(1, 10, 1))
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
	assert.Equal(t, 10.0, snapshot.Total)

	snapshot = cart.Add(user, line(1, 10, 2))
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 3, snapshot.Items[0].Quantity)
	assert.Equal(t, 30.0, snapshot.Total)

	snapshot = cart.Decrement(user, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, 20.0, snapshot.Total)

	cart.Decrement(user, 1)
	snapshot = cart.Decrement(user, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
	assert.Equal(t, 10.0, snapshot.Total)

	snapshot = cart.Remove(user, 1)
	assert.Empty(t, snapshot.Items)
	assert.Zero(t, snapshot.Total)
}
