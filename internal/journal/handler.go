package journal

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/journal", h.getPosts)
	app.Get("/api/v1/journal/:slug", h.getPost)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/journal", h.createPost)
	app.Patch("/api/v1/admin/journal/:id", h.updatePost)
	app.Delete("/api/v1/admin/journal/:id", h.deletePost)
}

func (h *Handler) getPosts(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getPost(c *fiber.Ctx) error {
	p, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
	}
	return c.JSON(p)
}

func (h *Handler) createPost(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.service.Add())
}

func (h *Handler) updatePost(c *fiber.Ctx) error {
	var req struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
	}

	u, err := ParseUpdate(req.Field, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownField), errors.Is(err, ErrInvalidValue):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	found, err := h.service.Update(c.Params("id"), u)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"updated": found, "posts": h.service.List()})
}

func (h *Handler) deletePost(c *fiber.Ctx) error {
	deleted := h.service.Delete(c.Params("id"))
	return c.JSON(fiber.Map{"deleted": deleted, "posts": h.service.List()})
}
