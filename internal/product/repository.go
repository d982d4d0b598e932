package product

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	List() []Product
	GetByID(id string) (Product, error)
	GetBySlug(slug string) (Product, error)
	// Add prepends a placeholder product and returns it.
	Add(now time.Time) Product
	// Update applies u to the product with the given id. It reports false when no
	// product matched; that is not an error.
	Update(id string, u Update) (bool, error)
	// Delete removes the product with the given id and reports whether one was removed.
	Delete(id string) bool
}

// InMemoryRepository holds the session's catalog. Every method holds the lock for
// its whole duration, so readers never observe a half-applied mutation.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	lastID  int64
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	for _, p := range seed {
		r.storage = append(r.storage, p.Clone())
	}
	return r
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		out = append(out, p.Clone())
	}
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Slug != "" && p.Slug == slug {
			return p.Clone(), nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Add(now time.Time) Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	sid := strconv.FormatInt(id, 10)

	p := Product{
		ID:          sid,
		Name:        "New Product",
		Price:       0,
		Category:    CategoryMen,
		Description: "Product description...",
		Images:      []string{placeholderImage},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Black"},
		Stock:       0,
		Slug:        "new-product-" + sid,
	}
	r.storage = append([]Product{p}, r.storage...)
	return p.Clone()
}

func (r *InMemoryRepository) Update(id string, u Update) (bool, error) {
	if err := u.validate(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			u.apply(&r.storage[i])
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return true
		}
	}
	return false
}
