package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Handler delegates cart operations to the cart service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Patch("/api/v1/cart", h.updateQuantity)
	app.Delete("/api/v1/cart/items", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type quantityRequest struct {
	LineKey
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCart())
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(LineKey)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	cart, err := h.service.AddToCart(payload.ProductID, payload.Size, payload.Color)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(cart)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.service.UpdateCartQuantity(payload.LineKey, payload.Quantity))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	payload := new(LineKey)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.service.RemoveFromCart(*payload))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.ClearCart()
	return c.JSON(h.service.GetCart())
}
