package suggestions

import (
	"fmt"
	"math/rand"

	"app/models"
)

// turnoverSentinel stands in for "never turns over" when daily sales are zero.
const turnoverSentinel = 9999.0

// GenerateDataDriven is the turnover-based suggestion path. It scores each
// suggestion with a confidence percentage, a field the rule-based path does
// not carry; the two schemas are deliberately kept apart.
func GenerateDataDriven(signal models.ProductSignal, staleness models.StalenessAssessment, threshold int, rng *rand.Rand) []models.DataDrivenSuggestion {
	turnover := turnoverSentinel
	if signal.DailySales > 0 {
		turnover = float64(signal.Stock) / signal.DailySales
	}

	var out []models.DataDrivenSuggestion

	if turnover > 90 {
		out = append(out, models.DataDrivenSuggestion{
			Type:           models.SuggestionClearance,
			Title:          "Clearance candidate",
			Description:    fmt.Sprintf("Current stock would take over %d days to sell at the present rate.", int(min(turnover, turnoverSentinel))),
			Urgency:        models.UrgencyHigh,
			Confidence:     confidence(85),
			ExpectedImpact: "Stock cleared within one quarter",
			ActionSteps: []string{
				"Tag the product for the next clearance event",
				"Set a clearance price near landed cost",
			},
		})
	}

	stale := staleness.Tier == models.TierStale || staleness.Tier == models.TierCritical || staleness.Tier == models.TierWarning
	if stale && signal.Stock > 5 {
		out = append(out, models.DataDrivenSuggestion{
			Type:           models.SuggestionReposition,
			Title:          "Reposition the listing",
			Description:    "The product is stale with meaningful stock remaining. New placement and copy outperform price cuts at this stage.",
			Urgency:        models.UrgencyMedium,
			Confidence:     confidence(70),
			ExpectedImpact: "Restored organic traffic",
			ActionSteps: []string{
				"Move the product into a higher-traffic collection",
				"Refresh the main product image",
			},
		})
	}

	if signal.DailySales < 0.1 && signal.Stock > 10 {
		out = append(out, models.DataDrivenSuggestion{
			Type:           models.SuggestionLiquidation,
			Title:          "Liquidate slow stock",
			Description:    "Near-zero velocity against a double-digit stock position.",
			Urgency:        models.UrgencyHigh,
			Confidence:     confidence(80),
			ExpectedImpact: "Capital recovered from dead stock",
			ActionSteps: []string{
				"Request liquidation quotes for the full remaining quantity",
			},
		})
	}

	// Category underperformance is sampled rather than computed: the category
	// baseline lives outside this engine, so the flag fires probabilistically
	// to prompt a manual comparison.
	if signal.Category != nil && rng.Intn(100) < 25 {
		out = append(out, models.DataDrivenSuggestion{
			Type:           models.SuggestionCategory,
			Title:          fmt.Sprintf("Review the %s category", *signal.Category),
			Description:    "This product may be underperforming its category. Compare it against the category's sales curve.",
			Urgency:        models.UrgencyLow,
			Confidence:     confidence(40 + rng.Intn(21)),
			ExpectedImpact: "Earlier detection of category-wide decline",
			ActionSteps: []string{
				"Compare the product's sales curve with the category average",
				"Decide whether the issue is the product or the category",
			},
		})
	}

	return out
}

func confidence(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}
