package handlers

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Narayanansankar/tirubot/internal/models"
	"github.com/Narayanansankar/tirubot/internal/services"
)

// WhatsAppHandler adapts the Twilio WhatsApp webhook onto the
// conversation engine. The channel is plain text, so quick-reply
// buttons are flattened into the message and photos are attached as
// media URLs.
type WhatsAppHandler struct {
	engine        *services.Engine
	twilioService *services.TwilioService
	assetBaseURL  string
}

// NewWhatsAppHandler creates a WhatsApp webhook handler. twilioService
// may be nil, in which case replies are only logged (development).
func NewWhatsAppHandler(engine *services.Engine, twilioService *services.TwilioService) *WhatsAppHandler {
	return &WhatsAppHandler{
		engine:        engine,
		twilioService: twilioService,
		assetBaseURL:  strings.TrimSuffix(os.Getenv("ASSET_BASE_URL"), "/"),
	}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid  string `form:"MessageSid"`
	AccountSid  string `form:"AccountSid"`
	From        string `form:"From"` // WhatsApp number (whatsapp:+919876543210)
	To          string `form:"To"`
	Body        string `form:"Body"`
	ProfileName string `form:"ProfileName"`
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	log.Printf("📱 WhatsApp message from %s: %s", payload.From, payload.Body)

	// Status callbacks arrive without a body; nothing to process.
	if payload.Body == "" || payload.From == "" {
		return c.SendStatus(fiber.StatusOK)
	}

	from := strings.TrimPrefix(payload.From, "whatsapp:")
	name := payload.ProfileName
	if name == "" {
		name = "Visitor"
	}

	response := h.engine.ProcessInput(from, services.InputKindText, payload.Body, name)
	text := renderPlainText(response)

	if h.twilioService == nil {
		log.Printf("📤 Response (not sent - Twilio not configured): %s", text)
		return c.SendStatus(fiber.StatusOK)
	}

	var err error
	if media := h.mediaURLs(response.Photos); len(media) > 0 {
		err = h.twilioService.SendWhatsAppMedia(from, text, media)
	} else {
		err = h.twilioService.SendWhatsAppMessage(from, text)
	}
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp response: %v", err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload is the JSON body for the development endpoint.
type TestWebhookPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test WhatsApp messages (for development)
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Test webhook received from %s: %s", payload.From, payload.Message)

	response := h.engine.ProcessInput(payload.From, services.InputKindText, payload.Message, "Visitor")

	return c.JSON(fiber.Map{
		"success":  true,
		"response": renderPlainText(response),
		"photos":   response.Photos,
	})
}

// renderPlainText flattens a response payload for a text-only channel:
// buttons become typed options appended after the message.
func renderPlainText(response *models.Response) string {
	if len(response.Buttons) == 0 {
		return response.Text
	}

	var b strings.Builder
	b.WriteString(response.Text)
	b.WriteString("\n")
	for _, button := range response.Buttons {
		b.WriteString(fmt.Sprintf("\nType '%s' for %s", button.Payload, button.Text))
	}
	return b.String()
}

// mediaURLs resolves relative photo asset paths against the public
// asset base URL. No base configured means no media is attached.
func (h *WhatsAppHandler) mediaURLs(photos []string) []string {
	if h.assetBaseURL == "" || len(photos) == 0 {
		return nil
	}

	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		urls = append(urls, h.assetBaseURL+"/"+strings.TrimPrefix(photo, "/"))
	}
	return urls
}
