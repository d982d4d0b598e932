package category

import "github.com/wichananm65/prism-styles-backend/internal/product"

// Counter is satisfied by *product.Service.
type Counter interface {
	CountByCategory() map[product.Category]int
}

type Service struct {
	products Counter
}

func NewService(products Counter) *Service {
	return &Service{products: products}
}

// List returns "All" followed by every catalog section, each with its live product count.
// Sections with no products are still listed.
func (s *Service) List(limit int) []CategoryItem {
	counts := s.products.CountByCategory()
	total := 0
	for _, n := range counts {
		total += n
	}

	out := make([]CategoryItem, 0, len(product.AllowedCategories)+1)
	out = append(out, CategoryItem{CategoryName: All, Count: total})
	for _, c := range product.AllowedCategories {
		out = append(out, CategoryItem{CategoryName: string(c), Count: counts[c]})
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
