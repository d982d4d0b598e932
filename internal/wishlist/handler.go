package wishlist

import (
	"github.com/gofiber/fiber/v2"
)

// Handler delegates wishlist operations to the wishlist service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist/toggle", h.toggle)
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	payload := new(toggleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	in := h.service.Toggle(payload.ProductID)
	return c.JSON(fiber.Map{"productId": payload.ProductID, "inWishlist": in, "wishlist": h.service.IDs()})
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ids": h.service.IDs(), "products": h.service.Products()})
}
