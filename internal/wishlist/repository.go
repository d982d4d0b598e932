package wishlist

import (
	"slices"
	"sync"
)

// Repository holds the session wishlist: an insertion-ordered set of product ids.
type Repository interface {
	// Toggle adds id when absent and removes it when present. It reports whether id
	// is in the wishlist afterwards.
	Toggle(productID string) bool
	Contains(productID string) bool
	List() []string
}

// InMemoryRepository is the only Repository; the wishlist never outlives the process.
type InMemoryRepository struct {
	mu  sync.RWMutex
	ids []string
}

func NewInMemoryRepository(seed []string) *InMemoryRepository {
	r := &InMemoryRepository{ids: make([]string, 0, len(seed))}
	for _, id := range seed {
		if !slices.Contains(r.ids, id) {
			r.ids = append(r.ids, id)
		}
	}
	return r
}

func (r *InMemoryRepository) Toggle(productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.Index(r.ids, productID); i >= 0 {
		r.ids = slices.Delete(r.ids, i, i+1)
		return false
	}
	r.ids = append(r.ids, productID)
	return true
}

func (r *InMemoryRepository) Contains(productID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.ids, productID)
}

func (r *InMemoryRepository) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ids)
}
