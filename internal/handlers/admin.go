package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Narayanansankar/tirubot/internal/services"
)

// AdminHandler exposes operational status and cache controls.
type AdminHandler struct {
	datasets *services.DatasetGateway
	sessions services.SessionStore
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(datasets *services.DatasetGateway, sessions services.SessionStore) *AdminHandler {
	return &AdminHandler{
		datasets: datasets,
		sessions: sessions,
	}
}

// HandleStatus reports dataset cache ages and active session counts.
func (h *AdminHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"active_sessions": h.sessions.ActiveCount(),
		"dataset_caches":  h.datasets.CacheStatus(),
	})
}

// HandleRefresh forces a dataset cache refresh on the next reads.
func (h *AdminHandler) HandleRefresh(c *fiber.Ctx) error {
	h.datasets.ForceRefresh()
	log.Println("Dataset refresh forced via admin endpoint")
	return c.JSON(fiber.Map{"success": true})
}
