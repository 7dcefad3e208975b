package handlers

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/forecast"
	"app/models"
	"app/suggestions"
)

const defaultThreshold = 30

// HandleRiskReport classifies a product list with the stockout forecast and
// the selected staleness policy. The product data comes in the request body;
// gathering it from the catalog is the caller's job.
func HandleRiskReport(c *fiber.Ctx) error {
	var req models.RiskReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if len(req.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No products supplied"})
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	policy := forecast.PolicyByName(req.Policy, threshold)

	now := time.Now()
	report := models.RiskReport{
		GeneratedAt: now,
		Threshold:   threshold,
		Entries:     make([]models.RiskReportEntry, 0, len(req.Products)),
	}
	for _, p := range req.Products {
		report.Entries = append(report.Entries, models.RiskReportEntry{
			Product:   p,
			Forecast:  forecast.ComputeForecast(p.Stock, p.DailySales),
			Staleness: forecast.ComputeStaleness(p.CreatedAt, p.LastSoldDate, now, policy),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": report})
}

// HandleSuggestions produces a remediation plan for one product. The default
// mode is the rule-based path; mode "data" selects the confidence-scored
// turnover path. A seed in the request makes the output reproducible;
// without one the product id seeds the generator so repeated calls for the
// same product agree.
func HandleSuggestions(c *fiber.Ctx) error {
	var req models.SuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.Product.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No product supplied"})
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}

	rng := rand.New(rand.NewSource(seedFor(req)))
	now := time.Now()
	staleness := forecast.ComputeStaleness(req.Product.CreatedAt, req.Product.LastSoldDate, now, forecast.ThresholdPolicy{T: threshold})

	if req.Mode == "data" {
		plan := suggestions.GenerateDataDriven(req.Product, staleness, threshold, rng)
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"mode": "data", "staleness": staleness, "suggestions": plan}})
	}

	plan := suggestions.Generate(req.Product, staleness, threshold, rng)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"mode": "rules", "staleness": staleness, "suggestions": plan}})
}

func seedFor(req models.SuggestionRequest) int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	h := fnv.New64a()
	h.Write([]byte(req.Product.ID))
	return int64(h.Sum64())
}
