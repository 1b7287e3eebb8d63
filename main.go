package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Narayanansankar/tirubot/database"
	"github.com/Narayanansankar/tirubot/internal/handlers"
	"github.com/Narayanansankar/tirubot/internal/models"
	"github.com/Narayanansankar/tirubot/internal/routes"
	"github.com/Narayanansankar/tirubot/internal/services"
	"github.com/Narayanansankar/tirubot/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	// Initialize storage
	var store storage.Store

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage with seed data (not for production!)")
		store = storage.NewSeededMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect()

		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.ParkingLot{},
			&models.ParkingStatus{},
			&models.LocalInfoRecord{},
			&models.Feedback{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")
	}
	storage.SetStore(store)

	// Initialize Twilio service for the WhatsApp channel (optional)
	twilioService, err := services.NewTwilioService()
	if err != nil {
		log.Printf("⚠️  Twilio not configured - WhatsApp channel disabled: %v", err)
		twilioService = nil
	} else {
		log.Println("✅ Twilio service initialized")
	}

	// Initialize core services
	sessions := services.NewMemorySessionStore(sessionIdleTimeout())
	texts := services.NewTextProvider(sessions)
	datasets := services.NewDatasetGateway(store)
	maps := services.NewMapsService(os.Getenv("GOOGLE_MAPS_API_KEY"))
	parking := services.NewParkingService(datasets, texts, maps, parkingMaxResults())
	localInfo := services.NewLocalInfoService(datasets, texts, maps)
	engine := services.NewEngine(sessions, texts, parking, localInfo, store, feedbackFormURL())

	log.Println("✅ All services initialized")

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Tiruchendur Assistant v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Setup routes
	chatHandler := handlers.NewChatHandler(engine)
	whatsappHandler := handlers.NewWhatsAppHandler(engine, twilioService)
	adminHandler := handlers.NewAdminHandler(datasets, sessions)
	routes.SetupRoutes(app, chatHandler, whatsappHandler, adminHandler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		log.Println("⏹️  Stopping session cleanup...")
		sessions.Stop()
		log.Println("⏹️  Shutting down server...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Tiruchendur Assistant starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Printf("📱 WhatsApp: %s", getWhatsAppStatus(twilioService))
	log.Printf("🗺️  Maps links: %s", getMapsStatus())
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func sessionIdleTimeout() time.Duration {
	minutes := 30
	if v := os.Getenv("SESSION_IDLE_TIMEOUT_MINUTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			minutes = parsed
		}
	}
	return time.Duration(minutes) * time.Minute
}

func parkingMaxResults() int {
	if v := os.Getenv("PARKING_MAX_RESULTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 0 // show all eligible lots
}

func feedbackFormURL() string {
	if v := os.Getenv("FEEDBACK_FORM_URL"); v != "" {
		return v
	}
	return "https://docs.google.com/forms/d/e/1FAIpQLSempmuc0_3KkCX3JK3wCZTod51Zw3o8ZkG78kQpcMTmVTGsPg/viewform?usp=header"
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func getWhatsAppStatus(twilioService *services.TwilioService) string {
	if twilioService == nil {
		return "Not configured"
	}
	return "Configured"
}

func getMapsStatus() string {
	if os.Getenv("GOOGLE_MAPS_API_KEY") == "" {
		return "Disabled (no API key)"
	}
	return "Enabled"
}
