package recommended

import "github.com/wichananm65/prism-styles-backend/internal/product"

// Catalog is satisfied by *product.Service.
type Catalog interface {
	Featured() []product.Product
	BestSellers() []product.Product
}

// Service provides business logic for recommended items.
type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// List returns up to `limit` items of the rail, starting at `offset`, in catalog order.
func (s *Service) List(rail Rail, limit int, offset int) []RecommendedItem {
	var src []product.Product
	switch rail {
	case RailFeatured:
		src = s.catalog.Featured()
	case RailBestSellers:
		src = s.catalog.BestSellers()
	}

	if offset >= len(src) {
		return []RecommendedItem{}
	}
	src = src[offset:]
	if limit > 0 && limit < len(src) {
		src = src[:limit]
	}

	out := make([]RecommendedItem, 0, len(src))
	for _, p := range src {
		item := RecommendedItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Category:  string(p.Category),
			Slug:      p.Slug,
		}
		if len(p.Images) > 0 {
			item.ProductImg = p.Images[0]
		}
		out = append(out, item)
	}
	return out
}
