package recommended

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/featured", h.getRail(RailFeatured))
	app.Get("/api/v1/products/bestsellers", h.getRail(RailBestSellers))
}

func (h *Handler) getRail(rail Rail) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// support pagination: ?limit=4&offset=0
		limit := 4
		offset := 0
		if l := c.Query("limit"); l != "" {
			if v, err := strconv.Atoi(l); err == nil && v > 0 {
				limit = v
			}
		}
		if o := c.Query("offset"); o != "" {
			if v, err := strconv.Atoi(o); err == nil && v >= 0 {
				offset = v
			}
		}
		return c.JSON(h.service.List(rail, limit, offset))
	}
}
