package stylist

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	conv *Conversation
}

func NewHandler(conv *Conversation) *Handler {
	return &Handler{conv: conv}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/stylist/messages", h.getMessages)
	app.Post("/api/v1/stylist/messages", h.sendMessage)
}

func (h *Handler) getMessages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"state": h.conv.State(), "messages": h.conv.Messages()})
}

type sendRequest struct {
	Message string `json:"message"`
}

// sendMessage answers once the text reply is in. A requested image keeps
// rendering in the background; clients poll GET until state is idle.
func (h *Handler) sendMessage(c *fiber.Ctx) error {
	payload := new(sendRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	reply, err := h.conv.Send(c.UserContext(), payload.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrTurnInProgress):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{
		"reply":        reply.Bot,
		"imagePending": reply.Image != nil,
		"messages":     h.conv.Messages(),
	})
}
