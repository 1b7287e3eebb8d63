package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Narayanansankar/tirubot/internal/handlers"
	"github.com/Narayanansankar/tirubot/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, chat *handlers.ChatHandler, whatsapp *handlers.WhatsAppHandler, admin *handlers.AdminHandler) {

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Tiruchendur Assistant API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":   "/health",
				"session":  "/api/session",
				"ask":      "/api/ask",
				"feedback": "/api/feedback",
				"webhook":  "/webhook/whatsapp",
				"admin":    "/admin/status",
			},
		})
	})

	// Health check
	app.Get("/health", handlers.HandleHealth)

	// Temple photo assets referenced by response payloads
	app.Static("/assets", "./assets")

	// Web chat API
	api := app.Group("/api")
	api.Post("/session", chat.HandleNewSession)
	api.Post("/ask", chat.HandleAsk)
	api.Post("/feedback", chat.HandleFeedback)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	// WhatsApp webhook - signature validation disabled for local dev
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		webhooks.Post("/whatsapp", whatsapp.HandleWebhook)
		log.Println("⚠️  WhatsApp webhook validation DISABLED for development")
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(), whatsapp.HandleWebhook)
	}

	// Test WhatsApp endpoint (for development)
	app.Post("/test/whatsapp", whatsapp.HandleTestWebhook)

	// ========== ADMIN ROUTES ==========
	adminGroup := app.Group("/admin")
	adminGroup.Get("/status", admin.HandleStatus)
	adminGroup.Post("/refresh", admin.HandleRefresh)
}
