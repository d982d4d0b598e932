package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/settings", h.getSettings)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Put("/api/v1/admin/settings", h.replaceSettings)
}

func (h *Handler) getSettings(c *fiber.Ctx) error {
	return c.JSON(h.repo.Get())
}

func (h *Handler) replaceSettings(c *fiber.Ctx) error {
	payload := new(SiteSettings)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.repo.Replace(*payload); err != nil {
		switch {
		case errors.Is(err, ErrInvalidSettings):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(h.repo.Get())
}
