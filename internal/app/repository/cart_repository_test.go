package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewrain/brewrain-backend/internal/app/model"
)

func testLine(id string) model.CartLine {
	return model.CartLine{
		ID:        id,
		ProductID: "matcha",
		Name:      "Matcha Latte",
		UnitPrice: 15000,
		Quantity:  1,
	}
}

func TestMemoryCartRepository_GetUnknownSession(t *testing.T) {
	repo := NewCartRepository()

	cart := repo.Get("missing")
	assert.Equal(t, 0, cart.Len())
}

func TestMemoryCartRepository_ReplaceAndGet(t *testing.T) {
	repo := NewCartRepository()

	cart := model.Cart{}.Add(testLine("a"))
	repo.Replace("s1", cart)

	got := repo.Get("s1")
	assert.Equal(t, cart.Lines, got.Lines)

	// The snapshot handed out must not share storage with the store.
	got.Lines[0].Quantity = 99
	again := repo.Get("s1")
	assert.Equal(t, 1, again.Lines[0].Quantity)
}

func TestMemoryCartRepository_SessionsAreIsolated(t *testing.T) {
	repo := NewCartRepository()

	repo.Replace("s1", model.Cart{}.Add(testLine("a")))
	repo.Replace("s2", model.Cart{}.Add(testLine("b")).Add(testLine("c")))

	assert.Equal(t, 1, repo.Get("s1").Len())
	assert.Equal(t, 2, repo.Get("s2").Len())
}

func TestMemoryCartRepository_Delete(t *testing.T) {
	repo := NewCartRepository()

	repo.Replace("s1", model.Cart{}.Add(testLine("a")))
	repo.Delete("s1")
	assert.Equal(t, 0, repo.Get("s1").Len())
}

func TestMemoryCartRepository_DeleteIdleSince(t *testing.T) {
	repo := NewCartRepository().(*memoryCartRepository)

	current := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }

	repo.Replace("stale", model.Cart{}.Add(testLine("a")))

	current = current.Add(2 * time.Hour)
	repo.Replace("fresh", model.Cart{}.Add(testLine("b")))

	removed := repo.DeleteIdleSince(current.Add(-time.Hour))
	require.Equal(t, 1, removed)

	assert.Equal(t, 0, repo.Get("stale").Len())
	assert.Equal(t, 1, repo.Get("fresh").Len())
}
