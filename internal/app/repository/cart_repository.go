package repository

import (
	"sync"
	"time"

	"github.com/brewrain/brewrain-backend/internal/app/model"
)

// CartRepository stores one cart per visitor session. Carts live in process
// memory only and are discarded with the session; nothing is persisted.
type CartRepository interface {
	Get(sessionID string) model.Cart
	Replace(sessionID string, cart model.Cart)
	Delete(sessionID string)
	DeleteIdleSince(cutoff time.Time) int
}

type sessionCart struct {
	cart       model.Cart
	lastAccess time.Time
}

type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*sessionCart
	now   func() time.Time
}

func NewCartRepository() CartRepository {
	return &memoryCartRepository{
		carts: make(map[string]*sessionCart),
		now:   time.Now,
	}
}

// Get returns a snapshot of the session's cart. Unknown sessions get an
// empty cart; reading also refreshes the idle stamp.
func (r *memoryCartRepository) Get(sessionID string) model.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.carts[sessionID]
	if !ok {
		// Non-nil lines so an empty cart serializes as [], not null.
		return model.Cart{Lines: []model.CartLine{}}
	}
	entry.lastAccess = r.now()
	return entry.cart.Clone()
}

// Replace swaps the session's cart for a new snapshot in one step. Callers
// never share a backing array with the store.
func (r *memoryCartRepository) Replace(sessionID string, cart model.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = &sessionCart{
		cart:       cart.Clone(),
		lastAccess: r.now(),
	}
}

func (r *memoryCartRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}

// DeleteIdleSince evicts carts not touched since the cutoff and returns how
// many were removed.
func (r *memoryCartRepository) DeleteIdleSince(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for sessionID, entry := range r.carts {
		if entry.lastAccess.Before(cutoff) {
			delete(r.carts, sessionID)
			removed++
		}
	}
	return removed
}
