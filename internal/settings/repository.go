package settings

import (
	"errors"
	"fmt"
	"sync"
)

var ErrInvalidSettings = errors.New("invalid site settings")

// Repository holds exactly one SiteSettings value.
type Repository interface {
	Get() SiteSettings
	Replace(s SiteSettings) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	current SiteSettings
}

func NewInMemoryRepository(seed SiteSettings) *InMemoryRepository {
	return &InMemoryRepository{current: seed.Clone()}
}

func (r *InMemoryRepository) Get() SiteSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Clone()
}

// Replace swaps the whole aggregate; the last write wins.
func (r *InMemoryRepository) Replace(s SiteSettings) error {
	if !s.FontFamily.Valid() {
		return fmt.Errorf("%w: font family %q", ErrInvalidSettings, s.FontFamily)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = s.Clone()
	return nil
}
