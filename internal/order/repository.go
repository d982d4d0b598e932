package order

import "sync"

// Repository stores orders most-recent-first. Orders are never deleted.
type Repository interface {
	Add(o Order)
	// UpdateStatus reports false when no order has the id.
	UpdateStatus(id string, status Status) bool
	List() []Order
	GetByID(id string) (Order, error)
	Exists(id string) bool
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{orders: make([]Order, 0, len(seed))}
	for _, o := range seed {
		r.orders = append(r.orders, o.clone())
	}
	return r
}

// Add prepends o.
func (r *InMemoryRepository) Add(o Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]Order{o.clone()}, r.orders...)
}

func (r *InMemoryRepository) UpdateStatus(id string, status Status) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return true
		}
	}
	return false
}

func (r *InMemoryRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.clone())
	}
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o.clone(), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
