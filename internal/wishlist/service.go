package wishlist

import "github.com/wichananm65/prism-styles-backend/internal/product"

// ProductLookup is satisfied by *product.Service.
type ProductLookup interface {
	GetByID(id string) (product.Product, error)
}

type Service struct {
	repo     Repository
	products ProductLookup
}

func NewService(repo Repository, products ProductLookup) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Toggle(productID string) bool {
	return s.repo.Toggle(productID)
}

func (s *Service) Contains(productID string) bool {
	return s.repo.Contains(productID)
}

func (s *Service) IDs() []string {
	return s.repo.List()
}

// Products resolves the wishlist against the live catalog. Ids of products that
// have since been deleted are skipped.
func (s *Service) Products() []product.Product {
	ids := s.repo.List()
	out := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.products.GetByID(id)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
