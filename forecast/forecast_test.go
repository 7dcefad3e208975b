package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"app/models"
)

func TestComputeForecastCritical(t *testing.T) {
	got := ComputeForecast(9, 3)
	if assert.NotNil(t, got.DaysUntilStockout) {
		assert.Equal(t, 3, *got.DaysUntilStockout)
	}
	assert.Equal(t, models.ForecastCritical, got.Status)
}

func TestComputeForecastUnknown(t *testing.T) {
	got := ComputeForecast(10, 0)
	assert.Nil(t, got.DaysUntilStockout)
	assert.Equal(t, models.ForecastUnknown, got.Status)

	got = ComputeForecast(10, -1)
	assert.Nil(t, got.DaysUntilStockout)
	assert.Equal(t, models.ForecastUnknown, got.Status)
}

func TestComputeForecastTiers(t *testing.T) {
	tests := []struct {
		name       string
		stock      int
		dailySales float64
		wantDays   int
		wantStatus string
	}{
		{"exact critical boundary", 3, 1, 3, models.ForecastCritical},
		{"just above critical", 4, 1, 4, models.ForecastWarning},
		{"exact warning boundary", 7, 1, 7, models.ForecastWarning},
		{"just above warning", 8, 1, 8, models.ForecastSafe},
		{"fractional sales round up", 10, 3, 4, models.ForecastWarning},
		{"zero stock", 0, 2, 0, models.ForecastCritical},
		{"negative stock clamps to zero", -5, 2, 0, models.ForecastCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeForecast(tt.stock, tt.dailySales)
			if assert.NotNil(t, got.DaysUntilStockout) {
				assert.Equal(t, tt.wantDays, *got.DaysUntilStockout)
			}
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

// Safe status must coincide exactly with a projected stockout of 8+ days.
func TestComputeForecastSafeBoundary(t *testing.T) {
	for stock := 0; stock <= 40; stock++ {
		for _, daily := range []float64{0.5, 1, 2.5, 3, 7} {
			got := ComputeForecast(stock, daily)
			days := int(math.Ceil(float64(stock) / daily))
			if days >= 8 {
				assert.Equal(t, models.ForecastSafe, got.Status, "stock=%d daily=%v", stock, daily)
			} else {
				assert.NotEqual(t, models.ForecastSafe, got.Status, "stock=%d daily=%v", stock, daily)
			}
		}
	}
}

func TestComputeStalenessFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := now.AddDate(0, 0, -45)

	got := ComputeStaleness(createdAt, nil, now, ThresholdPolicy{T: 30})
	assert.Equal(t, 45, got.DaysInStore)
	assert.Equal(t, 45, got.DaysSinceLastSale)
	assert.Equal(t, models.TierStale, got.Tier)
	assert.Equal(t, "threshold", got.Policy)
}

func TestComputeStalenessUsesLastSale(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := now.AddDate(0, 0, -200)
	lastSold := now.AddDate(0, 0, -10)

	got := ComputeStaleness(createdAt, &lastSold, now, ThresholdPolicy{T: 30})
	assert.Equal(t, 200, got.DaysInStore)
	assert.Equal(t, 10, got.DaysSinceLastSale)
	assert.Equal(t, models.TierFresh, got.Tier)
}
