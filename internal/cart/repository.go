package cart

import (
	"errors"
	"sync"

	"github.com/wichananm65/prism-styles-backend/internal/product"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// LineKey identifies a cart line. Two adds with the same key land on the same line.
type LineKey struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// String renders the key as "<id>-<size>-<color>".
func (k LineKey) String() string {
	return k.ProductID + "-" + k.Size + "-" + k.Color
}

// Item is a product snapshot taken when it was first added, plus the chosen variant.
type Item struct {
	product.Product
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
	Quantity      int    `json:"quantity"`
}

func (i Item) Key() LineKey {
	return LineKey{ProductID: i.ID, Size: i.SelectedSize, Color: i.SelectedColor}
}

func (i Item) clone() Item {
	i.Product = i.Product.Clone()
	return i
}

// Repository holds the session cart. Every method returns the cart contents after the call.
type Repository interface {
	Add(p product.Product, size, color string) []Item
	Remove(key LineKey) []Item
	UpdateQuantity(key LineKey, quantity int) []Item
	Clear()
	List() []Item
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make([]Item, 0)}
}

func (r *InMemoryRepository) Add(p product.Product, size, color string) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := LineKey{ProductID: p.ID, Size: size, Color: color}
	if i := r.indexOf(key); i >= 0 {
		r.items[i].Quantity++
		return r.snapshot()
	}
	r.items = append(r.items, Item{
		Product:       p.Clone(),
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      1,
	})
	return r.snapshot()
}

func (r *InMemoryRepository) Remove(key LineKey) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(key); i >= 0 {
		r.items = append(r.items[:i], r.items[i+1:]...)
	}
	return r.snapshot()
}

// UpdateQuantity sets the line's quantity, clamped to at least 1.
func (r *InMemoryRepository) UpdateQuantity(key LineKey, quantity int) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(key); i >= 0 {
		r.items[i].Quantity = max(1, quantity)
	}
	return r.snapshot()
}

func (r *InMemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make([]Item, 0)
}

func (r *InMemoryRepository) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

func (r *InMemoryRepository) indexOf(key LineKey) int {
	for i, it := range r.items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}

// snapshot must be called with the lock held.
func (r *InMemoryRepository) snapshot() []Item {
	out := make([]Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.clone())
	}
	return out
}
