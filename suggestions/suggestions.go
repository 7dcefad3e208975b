package suggestions

import (
	"fmt"
	"math/rand"
	"sort"

	"app/models"
)

var urgencyWeight = map[string]int{
	models.UrgencyHigh:   3,
	models.UrgencyMedium: 2,
	models.UrgencyLow:    1,
}

// bundleTemplates are the archetypes the bundle rule picks from.
var bundleTemplates = []struct {
	Title       string
	Description string
}{
	{"Starter bundle", "Pair this product with a best seller at a small combined discount."},
	{"Theme bundle", "Group it with related items from the same category into a themed set."},
	{"Volume bundle", "Offer a buy-two-get-one deal to move several units per order."},
	{"Gift bundle", "Package it with complementary products as a ready-made gift set."},
}

// Generate runs the remediation rules for one product and returns the
// suggestions sorted by urgency, highest first. Rules are independent; each
// contributes at most one suggestion. The rand source is injected so callers
// can seed it (by product id for stable output, by time for variety).
func Generate(signal models.ProductSignal, staleness models.StalenessAssessment, threshold int, rng *rand.Rand) []models.Suggestion {
	var out []models.Suggestion

	// Rule 1: graduated discount once the product has gone unsold past the threshold.
	if staleness.DaysSinceLastSale > threshold {
		pct := discountPercent(staleness.DaysSinceLastSale)
		urgency := models.UrgencyMedium
		if staleness.DaysSinceLastSale > 2*threshold {
			urgency = models.UrgencyHigh
		}
		out = append(out, models.Suggestion{
			Type:           models.SuggestionDiscount,
			Title:          fmt.Sprintf("Apply a %d%% discount", pct),
			Description:    fmt.Sprintf("No sales in %d days. A graduated discount restores price attractiveness without giving away margin at once.", staleness.DaysSinceLastSale),
			Urgency:        urgency,
			ExpectedImpact: "Faster sell-through at reduced margin",
			ActionSteps: []string{
				fmt.Sprintf("Start with a %d%% discount for one week", pct/2),
				fmt.Sprintf("Raise to %d%% if the product still does not move", pct),
				"Feature the discounted product on the store front page",
				"Review sales after two weeks and adjust or end the promotion",
			},
		})
	}

	// Rule 2: always propose a bundle; the template is picked from the catalog.
	tpl := bundleTemplates[rng.Intn(len(bundleTemplates))]
	out = append(out, models.Suggestion{
		Type:           models.SuggestionBundle,
		Title:          tpl.Title,
		Description:    tpl.Description,
		Urgency:        models.UrgencyMedium,
		ExpectedImpact: "Higher average order value",
		ActionSteps: []string{
			"Pick one or two complementary products",
			"Create the bundle with a 10-15% combined discount",
			"Promote the bundle in the product description of each item",
		},
	})

	// Rule 3: seasonal repositioning for long-listed products.
	if staleness.DaysInStore > 60 {
		out = append(out, models.Suggestion{
			Type:           models.SuggestionSeasonal,
			Title:          "Reposition for the current season",
			Description:    "The product has been listed for over two months. Refreshing imagery and copy for the current season can revive interest.",
			Urgency:        models.UrgencyMedium,
			ExpectedImpact: "Renewed visibility in seasonal searches",
			ActionSteps: []string{
				"Update the product photos with seasonal styling",
				"Rewrite the title and description around current-season keywords",
				"Add the product to the seasonal collection",
			},
		})
	}

	// Rule 4: marketing push when sales velocity is near zero.
	if signal.DailySales < 0.1 {
		out = append(out, models.Suggestion{
			Type:           models.SuggestionMarketing,
			Title:          "Boost product visibility",
			Description:    "Sales velocity is close to zero. The product likely is not being seen rather than being rejected.",
			Urgency:        models.UrgencyMedium,
			ExpectedImpact: "More product page traffic",
			ActionSteps: []string{
				"Share the product on the store's social channels",
				"Add it to an email campaign to past customers",
				"Check search terms and improve the product tags",
			},
		})
	}

	// Rule 5: liquidation when deep stock meets a stalled product.
	if signal.Stock > 20 && staleness.DaysSinceLastSale > threshold {
		out = append(out, models.Suggestion{
			Type:           models.SuggestionLiquidation,
			Title:          "Liquidate excess stock",
			Description:    fmt.Sprintf("%d units on hand with no recent sales. Holding cost now outweighs the full-price upside.", signal.Stock),
			Urgency:        models.UrgencyHigh,
			ExpectedImpact: "Recovered capital and freed storage",
			ActionSteps: []string{
				"Move the product to a clearance section at 40-60% off",
				"Offer the remaining stock to a liquidation buyer if it does not clear",
			},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return urgencyWeight[out[i].Urgency] > urgencyWeight[out[j].Urgency]
	})
	return out
}

// discountPercent maps days without a sale to a discount percentage,
// stepping 5 points per 10 days from a 15% floor, capped at 50%.
func discountPercent(daysSinceLastSale int) int {
	pct := (daysSinceLastSale/10)*5 + 15
	if pct > 50 {
		pct = 50
	}
	return pct
}
