package product

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes must run after recommended's routes so that
// /products/featured is not captured by /products/:id.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/slug/:slug", h.getProductBySlug)
	app.Get("/api/v1/products/:id", h.getProduct)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/products", h.createProduct)
	app.Patch("/api/v1/admin/products/:id", h.updateProduct)
	app.Delete("/api/v1/admin/products/:id", h.deleteProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	q := Query{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	return c.JSON(h.service.Query(q))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) getProductBySlug(c *fiber.Ctx) error {
	p, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.service.Add())
}

// FieldUpdateRequest is the body of an admin field edit.
type FieldUpdateRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	var req FieldUpdateRequest
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

	id := c.Params("id")
	found, err := h.service.Update(id, u)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !found {
		// unknown ids are a no-op
		return c.JSON(fiber.Map{"updated": false, "products": h.service.List()})
	}
	p, _ := h.service.GetByID(id)
	return c.JSON(fiber.Map{"updated": true, "product": p})
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	deleted := h.service.Delete(c.Params("id"))
	return c.JSON(fiber.Map{"deleted": deleted, "products": h.service.List()})
}
