// Package store builds the session state: every repository and service of the
// storefront, wired to each other once per process.
package store

import (
	"github.com/wichananm65/prism-styles-backend/internal/cart"
	"github.com/wichananm65/prism-styles-backend/internal/category"
	"github.com/wichananm65/prism-styles-backend/internal/journal"
	"github.com/wichananm65/prism-styles-backend/internal/lookbook"
	"github.com/wichananm65/prism-styles-backend/internal/order"
	"github.com/wichananm65/prism-styles-backend/internal/product"
	"github.com/wichananm65/prism-styles-backend/internal/recommended"
	"github.com/wichananm65/prism-styles-backend/internal/settings"
	"github.com/wichananm65/prism-styles-backend/internal/wishlist"
)

// Seed is the initial content of a Store.
type Seed struct {
	Products  []product.Product
	Posts     []journal.Post
	Settings  settings.SiteSettings
	Gallery   []lookbook.GalleryItem
	Portfolio []lookbook.PortfolioItem
	Wishlist  []string
	Orders    []order.Order
}

// DefaultSeed is the demo content the storefront ships with.
func DefaultSeed() Seed {
	return Seed{
		Products:  product.Seed(),
		Posts:     journal.Seed(),
		Settings:  settings.Default(),
		Gallery:   lookbook.SeedGallery(),
		Portfolio: lookbook.SeedPortfolio(),
	}
}

// Store owns all mutable state of one session. Pass it by reference; there is no
// package-level instance.
type Store struct {
	Products    *product.Service
	Categories  *category.Service
	Recommended *recommended.Service
	Cart        *cart.Service
	Wishlist    *wishlist.Service
	Orders      *order.Service
	Checkout    *order.Checkout
	Journal     *journal.Service
	Settings    settings.Repository
	Lookbook    lookbook.Repository
}

// New builds a Store from seed. forms receives checkout notifications.
func New(seed Seed, forms order.Submitter) *Store {
	products := product.NewService(product.NewInMemoryRepository(seed.Products))
	carts := cart.NewService(cart.NewInMemoryRepository(), products)
	orders := order.NewService(order.NewInMemoryRepository(seed.Orders))

	return &Store{
		Products:    products,
		Categories:  category.NewService(products),
		Recommended: recommended.NewService(products),
		Cart:        carts,
		Wishlist:    wishlist.NewService(wishlist.NewInMemoryRepository(seed.Wishlist), products),
		Orders:      orders,
		Checkout:    order.NewCheckout(orders, carts, forms),
		Journal:     journal.NewService(journal.NewInMemoryRepository(seed.Posts)),
		Settings:    settings.NewInMemoryRepository(seed.Settings),
		Lookbook:    lookbook.NewInMemoryRepository(seed.Gallery, seed.Portfolio),
	}
}
