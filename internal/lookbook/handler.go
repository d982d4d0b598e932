package lookbook

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	repo Repository
}

func NewHandler(r Repository) *Handler {
	return &Handler{repo: r}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/lookbook/gallery", h.getGallery)
	app.Get("/api/v1/lookbook/portfolio", h.getPortfolio)
}

func (h *Handler) getGallery(c *fiber.Ctx) error {
	return c.JSON(h.repo.Gallery(limitParam(c)))
}

func (h *Handler) getPortfolio(c *fiber.Ctx) error {
	return c.JSON(h.repo.Portfolio(limitParam(c)))
}

// limitParam reads ?limit=; zero means no limit.
func limitParam(c *fiber.Ctx) int {
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			return v
		}
	}
	return 0
}
