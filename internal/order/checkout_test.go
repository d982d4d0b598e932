package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/prism-styles-backend/internal/cart"
	"github.com/wichananm65/prism-styles-backend/internal/forms"
	"github.com/wichananm65/prism-styles-backend/internal/product"
)

type fakeSubmitter struct {
	err  error
	subs []forms.Submission
}

func (f *fakeSubmitter) Submit(_ context.Context, s forms.Submission) error {
	f.subs = append(f.subs, s)
	return f.err
}

func newCheckout(t *testing.T, sub *fakeSubmitter) (*Checkout, *Service, *cart.Service) {
	t.Helper()
	products := product.NewService(product.NewInMemoryRepository(product.Seed()))
	carts := cart.NewService(cart.NewInMemoryRepository(), products)
	orders := NewService(NewInMemoryRepository(nil))
	co := NewCheckout(orders, carts, sub)
	co.now = func() time.Time { return time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC) }
	return co, orders, carts
}

func fillCart(t *testing.T, carts *cart.Service) {
	t.Helper()
	_, err := carts.AddToCart("1", "M", "Midnight Black")
	require.NoError(t, err)
	_, err = carts.AddToCart("1", "M", "Midnight Black")
	require.NoError(t, err)
	_, err = carts.AddToCart("4", "32", "Slate")
	require.NoError(t, err)
}

var customer = CheckoutRequest{Name: "Ada", Email: "ada@x.io", Address: "1 Loop", City: "Berlin", Card: "4242424242424242"}

func TestCheckoutSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	co, orders, carts := newCheckout(t, sub)
	fillCart(t, carts)
	co.intn = func(int) int { return 234 }

	o, err := co.Place(context.Background(), customer)

	require.NoError(t, err)
	assert.Equal(t, "ORD-1234", o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 380.0, o.Total)
	assert.Equal(t, "2026-05-20T10:00:00Z", o.Date)
	assert.Len(t, o.Items, 2)
	assert.Empty(t, carts.Items())
	require.Len(t, orders.List(), 1)

	require.Len(t, sub.subs, 1)
	payload, ok := sub.subs[0].(forms.Checkout)
	require.True(t, ok)
	assert.Equal(t, "ORD-1234", payload.OrderID)
	assert.Equal(t, 380.0, payload.Subtotal)
	assert.Equal(t, 0.0, payload.Shipping)
	assert.Equal(t, forms.CheckoutItem{Name: "Oversized Prism Tee", Size: "M", Color: "Midnight Black", Qty: 2, Price: 85}, payload.Items[0])
	assert.Equal(t, "New Order Received - ORD-1234", payload.Subject())
}

func TestCheckoutFailureLeavesStateUntouched(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	co, orders, carts := newCheckout(t, sub)
	fillCart(t, carts)
	before := carts.Items()

	_, err := co.Place(context.Background(), customer)

	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Equal(t, before, carts.Items())
	assert.Empty(t, orders.List())
}

func TestCheckoutEmptyCart(t *testing.T) {
	sub := &fakeSubmitter{}
	co, _, _ := newCheckout(t, sub)

	_, err := co.Place(context.Background(), customer)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, sub.subs)
}

func TestCheckoutRequiresCustomer(t *testing.T) {
	co, _, carts := newCheckout(t, &fakeSubmitter{})
	fillCart(t, carts)

	_, err := co.Place(context.Background(), CheckoutRequest{Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrMissingCustomer)
}

func TestCheckoutSkipsUsedIDs(t *testing.T) {
	co, orders, carts := newCheckout(t, &fakeSubmitter{})
	orders.AddOrder(Order{ID: "ORD-1000", Status: StatusDelivered})
	draws := []int{0, 0, 1}
	co.intn = func(int) int {
		v := draws[0]
		draws = draws[1:]
		return v
	}
	fillCart(t, carts)

	o, err := co.Place(context.Background(), customer)

	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", o.ID)
	assert.Equal(t, "ORD-1001", orders.List()[0].ID)
}
