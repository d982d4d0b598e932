package forms

import "fmt"

// Submission is a payload accepted by the forms endpoint.
type Submission interface {
	// Subject is the "_subject" line the forms provider puts on the notification mail.
	Subject() string
	Payload() any
}

type Newsletter struct {
	Email     string
	BrandName string
}

func (n Newsletter) Subject() string {
	return "Newsletter Signup - " + n.BrandName
}

func (n Newsletter) Payload() any {
	return struct {
		Email   string `json:"email"`
		Subject string `json:"_subject"`
		Message string `json:"message"`
	}{n.Email, n.Subject(), "User signed up for the newsletter."}
}

// DefaultService is used when a booking names no service.
const DefaultService = "Personal Styling"

type Booking struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

func (b Booking) Subject() string {
	return fmt.Sprintf("New VIP Booking Request - %s from %s", b.Service, b.Name)
}

func (b Booking) Payload() any {
	return struct {
		Booking
		Subject string `json:"_subject"`
	}{b, b.Subject()}
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type CheckoutItem struct {
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Checkout is the order notification sent before an order is recorded.
// Card details are never part of it.
type Checkout struct {
	OrderID  string         `json:"orderId"`
	Customer Customer       `json:"customer"`
	Items    []CheckoutItem `json:"items"`
	Subtotal float64        `json:"subtotal"`
	Shipping float64        `json:"shipping"`
	Total    float64        `json:"total"`
}

func (c Checkout) Subject() string {
	return "New Order Received - " + c.OrderID
}

func (c Checkout) Payload() any {
	return struct {
		Checkout
		Subject string `json:"_subject"`
	}{c, c.Subject()}
}
