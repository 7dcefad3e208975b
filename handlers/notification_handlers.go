package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"app/audit"
	"app/models"
	"app/notify"
	"app/settings"
)

// NotificationHandler wires the dispatcher to the HTTP layer. The dispatcher
// and store are injected so tests can run against fakes.
type NotificationHandler struct {
	Dispatcher *notify.Dispatcher
	Store      settings.Store
	Audit      *audit.Sink
	Shop       models.ShopInfo
}

// HandleSendAlerts fans the supplied products out to every configured channel.
func (h *NotificationHandler) HandleSendAlerts(c *fiber.Ctx) error {
	var req models.SendAlertsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if len(req.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No products supplied"})
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = 5
	}

	cfg, err := h.Store.NotificationSettings(c.Context())
	if err != nil {
		log.Printf("Error loading notification settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load notification settings"})
	}

	results := h.Dispatcher.SendAll(c.Context(), cfg, req.Products, h.Shop, threshold)
	ok, msg := notify.Summarize(results)

	h.Audit.Append(c.Context(), audit.Entry{
		Action: "notifications.send",
		Actor:  actor(c),
		Details: map[string]interface{}{
			"products": len(req.Products),
			"channels": len(results),
			"message":  msg,
		},
	})

	return c.JSON(fiber.Map{"success": ok, "message": msg, "data": results})
}

// HandleTestAlerts runs the dispatch path with synthetic products so the
// store can verify its channel configuration.
func (h *NotificationHandler) HandleTestAlerts(c *fiber.Ctx) error {
	cfg, err := h.Store.NotificationSettings(c.Context())
	if err != nil {
		log.Printf("Error loading notification settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load notification settings"})
	}

	results := h.Dispatcher.TestAll(c.Context(), cfg, h.Shop)
	ok, msg := notify.Summarize(results)
	return c.JSON(fiber.Map{"success": ok, "message": msg, "data": results})
}

// HandleGetSettings returns the saved channel configuration.
func (h *NotificationHandler) HandleGetSettings(c *fiber.Ctx) error {
	cfg, err := h.Store.NotificationSettings(c.Context())
	if err != nil {
		log.Printf("Error loading notification settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load notification settings"})
	}
	return c.JSON(fiber.Map{"success": true, "data": cfg})
}

// HandleSaveSettings replaces the channel configuration wholesale.
func (h *NotificationHandler) HandleSaveSettings(c *fiber.Ctx) error {
	var cfg models.NotificationSettings
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if err := h.Store.SaveNotificationSettings(c.Context(), cfg); err != nil {
		log.Printf("Error saving notification settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save notification settings"})
	}

	h.Audit.Append(c.Context(), audit.Entry{Action: "notifications.settings.save", Actor: actor(c)})
	return c.JSON(fiber.Map{"success": true, "message": "Notification settings saved"})
}

func actor(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return "unknown"
}
