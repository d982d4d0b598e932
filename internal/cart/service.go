package cart

import (
	"fmt"

	"github.com/wichananm65/prism-styles-backend/internal/product"
)

// ProductLookup is satisfied by *product.Service.
type ProductLookup interface {
	GetByID(id string) (product.Product, error)
}

// Line is a cart item as the storefront sees it, with its key rendered.
type Line struct {
	Key string `json:"key"`
	Item
}

// Cart is the full cart view: lines plus derived totals.
type Cart struct {
	Items []Line `json:"items"`
	Totals
}

// Service orchestrates cart operations.
type Service struct {
	repo     Repository
	products ProductLookup
}

func NewService(repo Repository, products ProductLookup) *Service {
	return &Service{repo: repo, products: products}
}

// AddToCart adds one unit of the product's variant. An empty size or color falls back
// to the product's first option. Stock is not checked.
func (s *Service) AddToCart(productID, size, color string) (Cart, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if size == "" && len(p.Sizes) > 0 {
		size = p.Sizes[0]
	}
	if color == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}
	return view(s.repo.Add(p, size, color)), nil
}

func (s *Service) RemoveFromCart(key LineKey) Cart {
	return view(s.repo.Remove(key))
}

func (s *Service) UpdateCartQuantity(key LineKey, quantity int) Cart {
	return view(s.repo.UpdateQuantity(key, quantity))
}

func (s *Service) ClearCart() {
	s.repo.Clear()
}

func (s *Service) GetCart() Cart {
	return view(s.repo.List())
}

// Items returns a snapshot of the raw cart lines.
func (s *Service) Items() []Item {
	return s.repo.List()
}

func view(items []Item) Cart {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{Key: it.Key().String(), Item: it})
	}
	return Cart{Items: lines, Totals: ComputeTotals(items)}
}
