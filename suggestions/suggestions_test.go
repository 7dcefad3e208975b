package suggestions

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func signalWith(stock int, dailySales float64) models.ProductSignal {
	return models.ProductSignal{
		ID:         "p1",
		Title:      "Ceramic mug",
		Stock:      stock,
		DailySales: dailySales,
		CreatedAt:  time.Now().AddDate(0, 0, -90),
	}
}

func staleFor(daysSinceLastSale, daysInStore int) models.StalenessAssessment {
	return models.StalenessAssessment{
		DaysInStore:       daysInStore,
		DaysSinceLastSale: daysSinceLastSale,
		Tier:              models.TierStale,
		Policy:            "threshold",
	}
}

func TestGenerateOnlyBundleWhenHealthy(t *testing.T) {
	// Product sells fine: only the unconditional bundle rule fires.
	got := Generate(signalWith(10, 2), staleFor(5, 20), 30, newRand())
	require.Len(t, got, 1)
	assert.Equal(t, models.SuggestionBundle, got[0].Type)
	assert.Equal(t, models.UrgencyMedium, got[0].Urgency)
}

func TestGenerateDiscountRule(t *testing.T) {
	got := Generate(signalWith(10, 2), staleFor(45, 20), 30, newRand())

	var discount *models.Suggestion
	for i := range got {
		if got[i].Type == models.SuggestionDiscount {
			discount = &got[i]
		}
	}
	require.NotNil(t, discount)
	// 45 days: floor(45/10)*5+15 = 35%.
	assert.Contains(t, discount.Title, "35%")
	assert.Equal(t, models.UrgencyMedium, discount.Urgency)
	assert.Len(t, discount.ActionSteps, 4)

	// Past twice the threshold the urgency escalates.
	got = Generate(signalWith(10, 2), staleFor(61, 20), 30, newRand())
	for _, s := range got {
		if s.Type == models.SuggestionDiscount {
			assert.Equal(t, models.UrgencyHigh, s.Urgency)
		}
	}
}

func TestDiscountPercentCaps(t *testing.T) {
	assert.Equal(t, 15, discountPercent(9))
	assert.Equal(t, 20, discountPercent(10))
	assert.Equal(t, 35, discountPercent(45))
	assert.Equal(t, 50, discountPercent(70))
	assert.Equal(t, 50, discountPercent(500))
}

func TestGenerateAllRulesFire(t *testing.T) {
	// Deep stock, no sales, long-listed: every rule fires.
	got := Generate(signalWith(25, 0.05), staleFor(70, 90), 30, newRand())
	require.Len(t, got, 5)

	types := make(map[string]bool)
	for _, s := range got {
		types[s.Type] = true
	}
	for _, want := range []string{
		models.SuggestionDiscount,
		models.SuggestionBundle,
		models.SuggestionSeasonal,
		models.SuggestionMarketing,
		models.SuggestionLiquidation,
	} {
		assert.True(t, types[want], "missing %s", want)
	}
}

func TestGenerateSortedByUrgency(t *testing.T) {
	weight := map[string]int{
		models.UrgencyHigh:   3,
		models.UrgencyMedium: 2,
		models.UrgencyLow:    1,
	}

	got := Generate(signalWith(25, 0.05), staleFor(70, 90), 30, newRand())
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, weight[got[i-1].Urgency], weight[got[i].Urgency])
	}

	// Ties keep rule-evaluation order: with both discount and liquidation at
	// high urgency, discount (rule 1) precedes liquidation (rule 5).
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, models.SuggestionDiscount, got[0].Type)
	assert.Equal(t, models.SuggestionLiquidation, got[1].Type)
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(signalWith(25, 0.05), staleFor(70, 90), 30, rand.New(rand.NewSource(7)))
	b := Generate(signalWith(25, 0.05), staleFor(70, 90), 30, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}
