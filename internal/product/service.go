package product

import (
	"sort"
	"strings"
	"time"
)

// Sort orders accepted by Query.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Query narrows the catalog the way the shop page does. An empty Category or "All"
// disables the category filter; Search matches product names case-insensitively.
type Query struct {
	Category string
	Search   string
	Sort     string
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Product, error) {
	return s.repo.GetBySlug(slug)
}

// Add creates a placeholder product at the top of the catalog.
func (s *Service) Add() Product {
	return s.repo.Add(s.now())
}

func (s *Service) Update(id string, u Update) (bool, error) {
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id string) bool {
	return s.repo.Delete(id)
}

func (s *Service) Query(q Query) []Product {
	all := s.repo.List()
	out := make([]Product, 0, len(all))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range all {
		if q.Category != "" && q.Category != "All" && string(p.Category) != q.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

func (s *Service) Featured() []Product {
	return s.filter(func(p Product) bool { return p.Featured })
}

func (s *Service) BestSellers() []Product {
	return s.filter(func(p Product) bool { return p.BestSeller })
}

// CountByCategory returns how many catalog products sit in each section.
func (s *Service) CountByCategory() map[Category]int {
	counts := make(map[Category]int, len(AllowedCategories))
	for _, p := range s.repo.List() {
		counts[p.Category]++
	}
	return counts
}

func (s *Service) filter(keep func(Product) bool) []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Count() int {
	return len(s.repo.List())
}
