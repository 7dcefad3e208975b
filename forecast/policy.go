package forecast

import "app/models"

// StalenessPolicy assigns a staleness tier from elapsed-day counts. Two
// policies exist and callers pick one explicitly; they use different tier
// vocabularies and are not interchangeable.
type StalenessPolicy interface {
	Name() string
	Tier(daysSinceLastSale, daysInStore int) string
}

// ThresholdPolicy scales its cutoffs from a store-configured threshold T:
// half of T is still fresh, T is aging, twice T is stale, beyond is critical.
type ThresholdPolicy struct {
	T int
}

func (p ThresholdPolicy) Name() string { return "threshold" }

func (p ThresholdPolicy) Tier(daysSinceLastSale, _ int) string {
	switch {
	case daysSinceLastSale <= p.T/2:
		return models.TierFresh
	case daysSinceLastSale <= p.T:
		return models.TierAging
	case daysSinceLastSale <= 2*p.T:
		return models.TierStale
	default:
		return models.TierCritical
	}
}

// FixedCutpointPolicy uses hard 30/60/90/180-day cutoffs. Days in store can
// escalate a product even while it still sells occasionally.
type FixedCutpointPolicy struct{}

func (FixedCutpointPolicy) Name() string { return "fixed" }

func (FixedCutpointPolicy) Tier(daysSinceLastSale, daysInStore int) string {
	switch {
	case daysSinceLastSale > 90:
		return models.TierCritical
	case daysSinceLastSale > 60 || daysInStore > 180:
		return models.TierWarning
	case daysSinceLastSale > 30 || daysInStore > 90:
		return models.TierAttention
	default:
		return models.TierFresh
	}
}

// PolicyByName resolves a policy selector from the API layer. The threshold
// policy needs the store's staleness threshold in days.
func PolicyByName(name string, threshold int) StalenessPolicy {
	if name == "fixed" {
		return FixedCutpointPolicy{}
	}
	return ThresholdPolicy{T: threshold}
}
