package routes

import (
	"github.com/gofiber/fiber/v2"

	"app/handlers"
	"app/middleware"
)

// Deps carries the constructed engine handlers into route registration.
type Deps struct {
	Notifications *handlers.NotificationHandler
	Visibility    *handlers.VisibilityHandler
}

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Merchant Routes ---
	merchant := api.Group("/merchant", middleware.JWTMiddleware, middleware.MerchantRequired)

	// Inventory risk and suggestions
	inventory := merchant.Group("/inventory")
	inventory.Post("/risk", handlers.HandleRiskReport)
	inventory.Post("/suggestions", handlers.HandleSuggestions)

	// Notifications
	notifications := merchant.Group("/notifications")
	notifications.Post("/send", deps.Notifications.HandleSendAlerts)
	notifications.Post("/test", deps.Notifications.HandleTestAlerts)
	notifications.Get("/settings", deps.Notifications.HandleGetSettings)
	notifications.Put("/settings", deps.Notifications.HandleSaveSettings)

	// Visibility reconciliation
	visibility := merchant.Group("/visibility")
	visibility.Post("/bulk", deps.Visibility.HandleBulkUpdate)
	visibility.Post("/sync", deps.Visibility.HandleSyncAll)
	visibility.Get("/settings", deps.Visibility.HandleGetPolicy)
	visibility.Put("/settings", deps.Visibility.HandleSavePolicy)

	// --- AI Routes ---
	ai := api.Group("/ai", middleware.JWTMiddleware)
	ai.Post("/summary", handlers.HandleRiskSummary)
}
