package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/wichananm65/prism-styles-backend/internal/cart"
	"github.com/wichananm65/prism-styles-backend/internal/forms"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingCustomer  = errors.New("customer name and email are required")
	ErrSubmissionFailed = errors.New("order submission failed")
	ErrNoOrderID        = errors.New("no unused order id left")
)

// CartSource is satisfied by *cart.Service.
type CartSource interface {
	Items() []cart.Item
	ClearCart()
}

// Submitter is satisfied by *forms.Gateway.
type Submitter interface {
	Submit(ctx context.Context, s forms.Submission) error
}

// CheckoutRequest is what the customer enters on the checkout form. Card is
// accepted for form parity only; it is never stored or forwarded.
type CheckoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Card    string `json:"card"`
}

// Checkout turns the session cart into an order.
type Checkout struct {
	mu     sync.Mutex
	orders *Service
	cart   CartSource
	forms  Submitter
	now    func() time.Time
	intn   func(n int) int
}

func NewCheckout(orders *Service, c CartSource, f Submitter) *Checkout {
	return &Checkout{
		orders: orders,
		cart:   c,
		forms:  f,
		now:    time.Now,
		intn:   rand.IntN,
	}
}

// Place notifies the forms endpoint about the order and, only once that succeeded,
// records it as Pending and clears the cart. On any failure the cart and the order
// list are left as they were.
func (co *Checkout) Place(ctx context.Context, req CheckoutRequest) (Order, error) {
	if req.Name == "" || req.Email == "" {
		return Order{}, ErrMissingCustomer
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	items := co.cart.Items()
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}
	totals := cart.ComputeTotals(items)

	id, err := co.nextID()
	if err != nil {
		return Order{}, err
	}

	sub := forms.Checkout{
		OrderID: id,
		Customer: forms.Customer{
			Name:    req.Name,
			Email:   req.Email,
			Address: req.Address,
			City:    req.City,
		},
		Items:    make([]forms.CheckoutItem, 0, len(items)),
		Subtotal: totals.Subtotal,
		Shipping: totals.Shipping,
		Total:    totals.Total,
	}
	for _, it := range items {
		sub.Items = append(sub.Items, forms.CheckoutItem{
			Name:  it.Name,
			Size:  it.SelectedSize,
			Color: it.SelectedColor,
			Qty:   it.Quantity,
			Price: it.Price,
		})
	}

	if err := co.forms.Submit(ctx, sub); err != nil {
		log.Printf("[order.checkout] %s not placed: %v", id, err)
		return Order{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	o := Order{
		ID:           id,
		Date:         co.now().UTC().Format(time.RFC3339),
		Items:        items,
		Total:        totals.Total,
		Status:       StatusPending,
		CustomerName: req.Name,
		Email:        req.Email,
	}
	co.orders.AddOrder(o)
	co.cart.ClearCart()
	log.Printf("[order.checkout] %s placed: total=%.2f items=%d", id, o.Total, totals.ItemCount)
	return o, nil
}

// nextID draws ORD-1000..ORD-9999 until it finds one not already used.
func (co *Checkout) nextID() (string, error) {
	for range 9000 {
		id := "ORD-" + strconv.Itoa(co.intn(9000)+1000)
		if !co.orders.repo.Exists(id) {
			return id, nil
		}
	}
	return "", ErrNoOrderID
}
