package order

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductCounter is satisfied by *product.Service.
type ProductCounter interface {
	Count() int
}

// Handler delegates order operations to the order service and checkout.
type Handler struct {
	service  *Service
	checkout *Checkout
	products ProductCounter
	validate *validator.Validate
}

func NewHandler(s *Service, co *Checkout, products ProductCounter) *Handler {
	return &Handler{service: s, checkout: co, products: products, validate: validator.New()}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.placeOrder)
	app.Get("/api/v1/orders", h.getOrders)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/stats", h.getStats)
	app.Patch("/api/v1/admin/orders/:id/status", h.updateStatus)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	payload := new(CheckoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrMissingCustomer.Error()})
	}

	o, err := h.checkout.Place(c.UserContext(), *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCustomer):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart cannot be empty"})
		case errors.Is(err, ErrSubmissionFailed):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "There was an issue processing your order. Please try again."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats(h.products.Count()))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	status, err := ParseStatus(payload.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	id := c.Params("id")
	if !h.service.UpdateOrderStatus(id, status) {
		return c.JSON(fiber.Map{"updated": false, "orders": h.service.List()})
	}
	o, _ := h.service.GetByID(id)
	return c.JSON(fiber.Map{"updated": true, "order": o})
}
