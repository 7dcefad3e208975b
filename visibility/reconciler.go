package visibility

import (
	"context"
	"fmt"
	"log"

	"app/models"
)

// Platform is the commerce-platform port the reconciler drives. Failures are
// opaque: the reconciler records them as strings and moves on.
type Platform interface {
	QueryCatalog(ctx context.Context) ([]models.CatalogProduct, error)
	UpdateVisibility(ctx context.Context, id, status string) error
}

// Reconciler converges product visibility on the platform toward the policy.
type Reconciler struct {
	Platform Platform
	Throttle Throttle
}

// New returns a reconciler with production pacing.
func New(platform Platform) *Reconciler {
	return &Reconciler{Platform: platform, Throttle: DefaultThrottle()}
}

// BulkUpdate applies the policy to each product independently. Items that
// fail are recorded and the pass continues: the operation is at-least-effort,
// never atomic. A disabled policy short-circuits with zero platform calls.
func (r *Reconciler) BulkUpdate(ctx context.Context, policy models.VisibilityPolicy, products []models.StockLevel) models.BulkOutcome {
	outcome := models.BulkOutcome{
		Hidden: []string{},
		Shown:  []string{},
		Errors: []string{},
	}

	if !policy.Enabled {
		outcome.Message = "Visibility management is disabled"
		return outcome
	}

	calls := 0
	for _, p := range products {
		shouldHide := policy.HideOutOfStock && p.Stock == 0
		shouldShow := policy.ShowWhenRestocked && p.Stock > 0
		if !shouldHide && !shouldShow {
			continue
		}

		status := models.StatusActive
		if shouldHide {
			status = models.StatusDraft
		}

		if calls > 0 {
			r.Throttle.Wait(ctx)
		}
		calls++

		if err := r.Platform.UpdateVisibility(ctx, p.ID, status); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("%s: %v", p.ID, err))
			continue
		}

		if shouldHide {
			outcome.Hidden = append(outcome.Hidden, p.ID)
		} else {
			outcome.Shown = append(outcome.Shown, p.ID)
		}
	}

	outcome.Success = true
	outcome.Summary = models.BulkSummary{
		Hidden: len(outcome.Hidden),
		Shown:  len(outcome.Shown),
		Errors: len(outcome.Errors),
		Total:  len(products),
	}
	outcome.Message = fmt.Sprintf("Hidden %d, shown %d, %d errors", outcome.Summary.Hidden, outcome.Summary.Shown, outcome.Summary.Errors)
	return outcome
}

// SyncAll fetches the catalog snapshot, diffs it against the policy, and
// applies only the changes needed to converge. A catalog already in the
// desired state issues no mutations.
func (r *Reconciler) SyncAll(ctx context.Context, policy models.VisibilityPolicy) (models.BulkOutcome, error) {
	if !policy.Enabled {
		return models.BulkOutcome{
			Message: "Visibility management is disabled",
			Hidden:  []string{}, Shown: []string{}, Errors: []string{},
		}, nil
	}

	catalog, err := r.Platform.QueryCatalog(ctx)
	if err != nil {
		return models.BulkOutcome{}, fmt.Errorf("query catalog: %w", err)
	}

	var drifted []models.StockLevel
	for _, p := range catalog {
		shouldHide := policy.HideOutOfStock && p.Stock == 0
		shouldShow := policy.ShowWhenRestocked && p.Stock > 0
		if (shouldHide && p.Status == models.StatusActive) || (shouldShow && p.Status == models.StatusDraft) {
			drifted = append(drifted, models.StockLevel{ID: p.ID, Stock: p.Stock})
		}
	}

	if len(drifted) == 0 {
		return models.BulkOutcome{
			Success: true,
			Message: "All products already in sync",
			Hidden:  []string{}, Shown: []string{}, Errors: []string{},
			Summary: models.BulkSummary{Total: len(catalog)},
		}, nil
	}

	log.Printf("Visibility sync: %d of %d products drifted", len(drifted), len(catalog))
	return r.BulkUpdate(ctx, policy, drifted), nil
}
