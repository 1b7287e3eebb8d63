package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Narayanansankar/tirubot/internal/services"
)

// ChatHandler serves the web chat frontend endpoints.
type ChatHandler struct {
	engine *services.Engine
}

// NewChatHandler creates a web chat handler.
func NewChatHandler(engine *services.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// AskRequest is one chat turn from the frontend. An empty question
// marks the start of a conversation.
type AskRequest struct {
	UserID   string `json:"user_id"`
	Question string `json:"question"`
	Name     string `json:"name"`
}

// FeedbackRequest is a free-text feedback submission.
type FeedbackRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// HandleNewSession issues a fresh visitor id for the frontend.
func (h *ChatHandler) HandleNewSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id": uuid.NewString(),
	})
}

// HandleAsk processes one chat turn and returns the response payload.
func (h *ChatHandler) HandleAsk(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing user_id",
		})
	}

	question := strings.TrimSpace(req.Question)
	kind := services.InputKindText
	if question == "" {
		kind = services.InputKindStart
	}

	name := req.Name
	if name == "" {
		name = "Visitor"
	}

	response := h.engine.ProcessInput(req.UserID, kind, question, name)
	return c.JSON(response)
}

// HandleFeedback stores a visitor's feedback message.
func (h *ChatHandler) HandleFeedback(c *fiber.Ctx) error {
	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.UserID == "" || strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing user_id or message",
		})
	}

	if err := h.engine.SaveFeedback(req.UserID, req.Message); err != nil {
		log.Printf("Failed to store feedback from %s: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save feedback",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
