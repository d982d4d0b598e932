package order

import (
	"errors"
	"fmt"

	"github.com/wichananm65/prism-styles-backend/internal/cart"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

var AllowedStatuses = []Status{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}

// ParseStatus accepts only the four known statuses, matched exactly.
func ParseStatus(s string) (Status, error) {
	for _, a := range AllowedStatuses {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Order is a checked-out cart. Items are a snapshot taken at checkout time.
type Order struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	Items        []cart.Item `json:"items"`
	Total        float64     `json:"total"`
	Status       Status      `json:"status"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
}

func (o Order) clone() Order {
	items := make([]cart.Item, 0, len(o.Items))
	for _, it := range o.Items {
		it.Product = it.Product.Clone()
		items = append(items, it)
	}
	o.Items = items
	return o
}
