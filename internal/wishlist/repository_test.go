package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wichananm65/prism-styles-backend/internal/product"
)

func TestToggleTwiceRestoresMembership(t *testing.T) {
	for _, seed := range [][]string{nil, {"3"}, {"1", "3", "5"}} {
		r := NewInMemoryRepository(seed)
		before := r.List()
		was := r.Contains("3")

		r.Toggle("3")
		assert.NotEqual(t, was, r.Contains("3"))
		r.Toggle("3")

		assert.Equal(t, was, r.Contains("3"))
		assert.ElementsMatch(t, before, r.List())
	}
}

func TestTogglePreservesInsertionOrder(t *testing.T) {
	r := NewInMemoryRepository(nil)

	assert.True(t, r.Toggle("9"))
	assert.True(t, r.Toggle("2"))
	assert.True(t, r.Toggle("5"))
	assert.False(t, r.Toggle("2"))

	assert.Equal(t, []string{"9", "5"}, r.List())
}

func TestSeedDeduplicates(t *testing.T) {
	r := NewInMemoryRepository([]string{"1", "1", "2"})
	assert.Equal(t, []string{"1", "2"}, r.List())
}

func TestProductsSkipsDeletedIDs(t *testing.T) {
	products := product.NewService(product.NewInMemoryRepository(product.Seed()))
	svc := NewService(NewInMemoryRepository([]string{"2", "6"}), products)

	products.Delete("2")

	got := svc.Products()
	if assert.Len(t, got, 1) {
		assert.Equal(t, "6", got[0].ID)
	}
	assert.Equal(t, []string{"2", "6"}, svc.IDs())
}
