package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/config"
	"app/models"
)

// HandleRiskSummary turns a risk report into a short prose briefing using
// the Gemini API. The report itself is computed by HandleRiskReport; this
// endpoint only narrates it.
func HandleRiskSummary(c *fiber.Ctx) error {
	var report models.RiskReport
	if err := c.BodyParser(&report); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if len(report.Entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Report has no entries"})
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to initialize AI client"})
	}
	defer client.Close()

	data, err := json.Marshal(report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to encode report"})
	}

	prompt := fmt.Sprintf(`You are an inventory analyst for a small online store.
Summarize the following inventory risk report in three short paragraphs:
which products are about to run out, which have gone stale, and what the
store owner should do first this week. Be concrete and mention products by
name. Report data:

%s`, string(data))

	model := client.GenerativeModel("gemini-1.5-pro")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error generating risk summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate summary"})
	}

	var summary string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				summary += string(text)
			}
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"summary": summary}})
}
