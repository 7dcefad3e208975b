package forecast

import (
	"math"
	"time"

	"app/models"
)

// ComputeForecast projects the days until stockout from current stock and
// average daily sales. With no sales velocity the projection is unknowable,
// so the status is "unknown" and the day count stays nil.
func ComputeForecast(stock int, dailySales float64) models.ForecastAssessment {
	if stock < 0 {
		stock = 0
	}
	if dailySales <= 0 {
		return models.ForecastAssessment{Status: models.ForecastUnknown}
	}

	days := int(math.Ceil(float64(stock) / dailySales))
	status := models.ForecastSafe
	if days <= 3 {
		status = models.ForecastCritical
	} else if days <= 7 {
		status = models.ForecastWarning
	}

	return models.ForecastAssessment{DaysUntilStockout: &days, Status: status}
}

// ComputeStaleness derives staleness metrics for a product. A product that
// never sold is measured from its creation date.
func ComputeStaleness(createdAt time.Time, lastSold *time.Time, now time.Time, policy StalenessPolicy) models.StalenessAssessment {
	lastSale := createdAt
	if lastSold != nil {
		lastSale = *lastSold
	}

	daysInStore := elapsedDays(createdAt, now)
	daysSinceLastSale := elapsedDays(lastSale, now)

	return models.StalenessAssessment{
		DaysInStore:       daysInStore,
		DaysSinceLastSale: daysSinceLastSale,
		Tier:              policy.Tier(daysSinceLastSale, daysInStore),
		Policy:            policy.Name(),
	}
}

func elapsedDays(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
