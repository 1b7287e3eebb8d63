package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Narayanansankar/tirubot/database"
)

// HandleHealth reports service health for monitoring. Database status
// is included only when the database backend is in use.
func HandleHealth(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	dbHealthy := true
	if os.Getenv("USE_MEMORY_STORE") != "true" && database.DB != nil {
		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbHealthy = false
			status = "unhealthy"
			statusCode = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database": dbHealthy,
		},
	})
}
