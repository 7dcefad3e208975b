package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/audit"
	"app/config"
	"app/database"
	"app/handlers"
	"app/models"
	"app/notify"
	"app/platform"
	"app/routes"
	"app/settings"
	"app/visibility"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	config.LoadFromEnv()
	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Initialize database
	database.Connect(databaseURL)
	defer database.Close()

	// Assemble the engine
	shop := models.ShopInfo{Name: config.AppConfig.ShopName, Domain: config.AppConfig.ShopDomain}
	store := settings.NewPGStore(database.GetDB())
	sink := audit.NewSink(database.GetDB())

	webhooks := notify.NewHTTPWebhookSender()
	dispatcher := &notify.Dispatcher{
		Email:   notify.NewSendGridSender(config.AppConfig.SendGridAPIKey, config.AppConfig.AlertFromEmail),
		Slack:   webhooks,
		Discord: webhooks,
	}

	commerce := platform.New(config.AppConfig.PlatformEndpoint, config.AppConfig.PlatformToken)
	reconciler := visibility.New(commerce)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		Notifications: &handlers.NotificationHandler{Dispatcher: dispatcher, Store: store, Audit: sink, Shop: shop},
		Visibility:    &handlers.VisibilityHandler{Reconciler: reconciler, Store: store, Audit: sink},
	})

	// Start server
	log.Fatal(app.Listen(":3000"))
}
