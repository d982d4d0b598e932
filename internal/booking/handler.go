package booking

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/prism-styles-backend/internal/forms"
	"github.com/wichananm65/prism-styles-backend/internal/settings"
)

var (
	ErrInvalidRequest = errors.New("name and a valid email are required")
)

// Submitter is satisfied by *forms.Gateway.
type Submitter interface {
	Submit(ctx context.Context, s forms.Submission) error
}

// Branding is satisfied by settings.Repository.
type Branding interface {
	Get() settings.SiteSettings
}

// Handler relays booking requests and newsletter signups to the forms endpoint.
// Nothing is stored locally.
type Handler struct {
	forms    Submitter
	brand    Branding
	validate *validator.Validate
}

func NewHandler(f Submitter, brand Branding) *Handler {
	return &Handler{forms: f, brand: brand, validate: validator.New()}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/bookings", h.book)
	app.Post("/api/v1/newsletter", h.subscribe)
}

type bookingRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

// toBooking trims the contact fields and fills in the default service.
func (r bookingRequest) toBooking() forms.Booking {
	b := forms.Booking{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   r.Phone,
		Service: strings.TrimSpace(r.Service),
		Date:    r.Date,
		Time:    r.Time,
		Notes:   r.Notes,
	}
	if b.Service == "" {
		b.Service = forms.DefaultService
	}
	return b
}

func (h *Handler) book(c *fiber.Ctx) error {
	payload := new(bookingRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrInvalidRequest.Error()})
	}

	b := payload.toBooking()
	if err := h.forms.Submit(c.UserContext(), b); err != nil {
		log.Printf("[booking] request from %s not delivered: %v", b.Email, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Failed to send booking request. Please try again."})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Booking request received", "service": b.Service})
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *Handler) subscribe(c *fiber.Ctx) error {
	payload := new(newsletterRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.Email = strings.TrimSpace(payload.Email)
	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "a valid email is required"})
	}

	sub := forms.Newsletter{Email: payload.Email, BrandName: h.brand.Get().BrandName}
	if err := h.forms.Submit(c.UserContext(), sub); err != nil {
		log.Printf("[booking] newsletter signup not delivered: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Something went wrong. Please try again."})
	}
	return c.JSON(fiber.Map{"message": "Thank you for joining our community!"})
}
