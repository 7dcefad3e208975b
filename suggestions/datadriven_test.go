package suggestions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func TestDataDrivenClearanceOnSlowTurnover(t *testing.T) {
	// 100 units at 1/day is a 100 day turnover, past the 90 day cutoff.
	got := GenerateDataDriven(signalWith(100, 1), staleFor(5, 20), 30, newRand())

	require.NotEmpty(t, got)
	assert.Equal(t, models.SuggestionClearance, got[0].Type)
	assert.Equal(t, "85%", got[0].Confidence)
}

func TestDataDrivenSentinelTurnover(t *testing.T) {
	// Zero velocity takes the sentinel path and still flags clearance.
	got := GenerateDataDriven(signalWith(3, 0), staleFor(5, 20), 30, newRand())

	found := false
	for _, s := range got {
		if s.Type == models.SuggestionClearance {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDataDrivenRepositionAndLiquidation(t *testing.T) {
	sig := signalWith(15, 0.05)
	st := staleFor(70, 90) // tier stale
	got := GenerateDataDriven(sig, st, 30, newRand())

	types := make(map[string]string)
	for _, s := range got {
		types[s.Type] = s.Confidence
	}
	assert.Equal(t, "70%", types[models.SuggestionReposition])
	assert.Equal(t, "80%", types[models.SuggestionLiquidation])
}

func TestDataDrivenNoCategoryWithoutCategory(t *testing.T) {
	// Without a category the sampled category flag can never fire,
	// whatever the rand source produces.
	for seed := int64(0); seed < 20; seed++ {
		got := GenerateDataDriven(signalWith(2, 1), staleFor(5, 20), 30, rand.New(rand.NewSource(seed)))
		for _, s := range got {
			assert.NotEqual(t, models.SuggestionCategory, s.Type)
		}
	}
}

func TestDataDrivenCarriesConfidenceEverywhere(t *testing.T) {
	cat := "kitchen"
	sig := signalWith(100, 0.05)
	sig.Category = &cat

	got := GenerateDataDriven(sig, staleFor(70, 90), 30, newRand())
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.Regexp(t, `^\d+%$`, s.Confidence)
	}
}
