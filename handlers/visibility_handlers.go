package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"app/audit"
	"app/models"
	"app/settings"
	"app/visibility"
)

// VisibilityHandler exposes the reconciler over HTTP.
type VisibilityHandler struct {
	Reconciler *visibility.Reconciler
	Store      settings.Store
	Audit      *audit.Sink
}

// HandleBulkUpdate applies the visibility policy to the supplied products.
func (h *VisibilityHandler) HandleBulkUpdate(c *fiber.Ctx) error {
	var req models.BulkVisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if len(req.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No products supplied"})
	}

	policy, err := h.Store.VisibilityPolicy(c.Context())
	if err != nil {
		log.Printf("Error loading visibility policy: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load visibility policy"})
	}

	outcome := h.Reconciler.BulkUpdate(c.Context(), policy, req.Products)

	h.Audit.Append(c.Context(), audit.Entry{
		Action: "visibility.bulk",
		Actor:  actor(c),
		Details: map[string]interface{}{
			"hidden": outcome.Summary.Hidden,
			"shown":  outcome.Summary.Shown,
			"errors": outcome.Summary.Errors,
		},
	})

	return c.JSON(fiber.Map{"success": outcome.Success, "message": outcome.Message, "data": outcome})
}

// HandleSyncAll reconciles the whole catalog against the policy.
func (h *VisibilityHandler) HandleSyncAll(c *fiber.Ctx) error {
	policy, err := h.Store.VisibilityPolicy(c.Context())
	if err != nil {
		log.Printf("Error loading visibility policy: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load visibility policy"})
	}

	outcome, err := h.Reconciler.SyncAll(c.Context(), policy)
	if err != nil {
		log.Printf("Error during visibility sync: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "Failed to fetch the catalog from the platform"})
	}

	h.Audit.Append(c.Context(), audit.Entry{
		Action: "visibility.sync",
		Actor:  actor(c),
		Details: map[string]interface{}{
			"hidden": outcome.Summary.Hidden,
			"shown":  outcome.Summary.Shown,
			"errors": outcome.Summary.Errors,
		},
	})

	return c.JSON(fiber.Map{"success": outcome.Success, "message": outcome.Message, "data": outcome})
}

// HandleGetPolicy returns the saved visibility policy.
func (h *VisibilityHandler) HandleGetPolicy(c *fiber.Ctx) error {
	policy, err := h.Store.VisibilityPolicy(c.Context())
	if err != nil {
		log.Printf("Error loading visibility policy: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load visibility policy"})
	}
	return c.JSON(fiber.Map{"success": true, "data": policy})
}

// HandleSavePolicy replaces the visibility policy wholesale.
func (h *VisibilityHandler) HandleSavePolicy(c *fiber.Ctx) error {
	var policy models.VisibilityPolicy
	if err := c.BodyParser(&policy); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if err := h.Store.SaveVisibilityPolicy(c.Context(), policy); err != nil {
		log.Printf("Error saving visibility policy: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save visibility policy"})
	}

	h.Audit.Append(c.Context(), audit.Entry{Action: "visibility.policy.save", Actor: actor(c)})
	return c.JSON(fiber.Map{"success": true, "message": "Visibility policy saved"})
}
