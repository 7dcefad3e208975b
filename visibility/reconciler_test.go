package visibility

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

type call struct {
	ID     string
	Status string
}

type fakePlatform struct {
	catalog    []models.CatalogProduct
	catalogErr error
	calls      []call
	failIDs    map[string]error
}

func (f *fakePlatform) QueryCatalog(context.Context) ([]models.CatalogProduct, error) {
	return f.catalog, f.catalogErr
}

func (f *fakePlatform) UpdateVisibility(_ context.Context, id, status string) error {
	f.calls = append(f.calls, call{ID: id, Status: status})
	if err, ok := f.failIDs[id]; ok {
		return err
	}
	return nil
}

func newTestReconciler(p *fakePlatform) *Reconciler {
	return &Reconciler{Platform: p, Throttle: NoDelay{}}
}

func enabledPolicy() models.VisibilityPolicy {
	return models.VisibilityPolicy{Enabled: true, HideOutOfStock: true, ShowWhenRestocked: true}
}

func TestBulkUpdateDisabledShortCircuits(t *testing.T) {
	p := &fakePlatform{}
	r := newTestReconciler(p)

	outcome := r.BulkUpdate(context.Background(), models.VisibilityPolicy{Enabled: false}, []models.StockLevel{{ID: "1", Stock: 0}})

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, "disabled")
	assert.Empty(t, p.calls)
}

func TestBulkUpdateHidesAndShows(t *testing.T) {
	p := &fakePlatform{}
	r := newTestReconciler(p)

	outcome := r.BulkUpdate(context.Background(), enabledPolicy(), []models.StockLevel{
		{ID: "oos", Stock: 0},
		{ID: "restocked", Stock: 4},
	})

	require.True(t, outcome.Success)
	assert.Equal(t, []string{"oos"}, outcome.Hidden)
	assert.Equal(t, []string{"restocked"}, outcome.Shown)
	assert.Empty(t, outcome.Errors)
	assert.Equal(t, models.BulkSummary{Hidden: 1, Shown: 1, Errors: 0, Total: 2}, outcome.Summary)

	require.Len(t, p.calls, 2)
	assert.Equal(t, call{ID: "oos", Status: models.StatusDraft}, p.calls[0])
	assert.Equal(t, call{ID: "restocked", Status: models.StatusActive}, p.calls[1])
}

func TestBulkUpdateSkipsWhenPolicyDirectionOff(t *testing.T) {
	p := &fakePlatform{}
	r := newTestReconciler(p)

	policy := models.VisibilityPolicy{Enabled: true, HideOutOfStock: false, ShowWhenRestocked: false}
	outcome := r.BulkUpdate(context.Background(), policy, []models.StockLevel{
		{ID: "oos", Stock: 0},
		{ID: "stocked", Stock: 9},
	})

	assert.True(t, outcome.Success)
	assert.Empty(t, p.calls)
	assert.Equal(t, 2, outcome.Summary.Total)
	assert.Zero(t, outcome.Summary.Hidden)
	assert.Zero(t, outcome.Summary.Shown)
}

func TestBulkUpdateContinuesPastFailures(t *testing.T) {
	p := &fakePlatform{failIDs: map[string]error{"bad": errors.New("throttled")}}
	r := newTestReconciler(p)

	outcome := r.BulkUpdate(context.Background(), enabledPolicy(), []models.StockLevel{
		{ID: "bad", Stock: 0},
		{ID: "good", Stock: 0},
	})

	require.True(t, outcome.Success)
	assert.Equal(t, []string{"good"}, outcome.Hidden)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "bad: throttled", outcome.Errors[0])
	assert.Len(t, p.calls, 2)
}

func TestBulkUpdateHiddenShownDisjoint(t *testing.T) {
	p := &fakePlatform{}
	r := newTestReconciler(p)

	var products []models.StockLevel
	for i := 0; i < 20; i++ {
		products = append(products, models.StockLevel{ID: fmt.Sprintf("p%d", i), Stock: i % 3})
	}

	outcome := r.BulkUpdate(context.Background(), enabledPolicy(), products)
	seen := make(map[string]bool)
	for _, id := range outcome.Hidden {
		seen[id] = true
	}
	for _, id := range outcome.Shown {
		assert.False(t, seen[id], "product %s in both hidden and shown", id)
	}
}

func TestSyncAllAlreadyInSync(t *testing.T) {
	p := &fakePlatform{catalog: []models.CatalogProduct{
		{ID: "a", Stock: 0, Status: models.StatusDraft},
		{ID: "b", Stock: 7, Status: models.StatusActive},
	}}
	r := newTestReconciler(p)

	outcome, err := r.SyncAll(context.Background(), enabledPolicy())
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, "All products already in sync", outcome.Message)
	assert.Empty(t, p.calls)
	assert.Equal(t, 2, outcome.Summary.Total)
}

func TestSyncAllAppliesOnlyTheDiff(t *testing.T) {
	p := &fakePlatform{catalog: []models.CatalogProduct{
		{ID: "drifted-oos", Stock: 0, Status: models.StatusActive},
		{ID: "drifted-restock", Stock: 3, Status: models.StatusDraft},
		{ID: "in-sync", Stock: 5, Status: models.StatusActive},
	}}
	r := newTestReconciler(p)

	outcome, err := r.SyncAll(context.Background(), enabledPolicy())
	require.NoError(t, err)
	require.True(t, outcome.Success)
	assert.Equal(t, []string{"drifted-oos"}, outcome.Hidden)
	assert.Equal(t, []string{"drifted-restock"}, outcome.Shown)
	assert.Len(t, p.calls, 2)
}

func TestSyncAllDisabled(t *testing.T) {
	p := &fakePlatform{catalog: []models.CatalogProduct{{ID: "a", Stock: 0, Status: models.StatusActive}}}
	r := newTestReconciler(p)

	outcome, err := r.SyncAll(context.Background(), models.VisibilityPolicy{Enabled: false})
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Empty(t, p.calls)
}

func TestSyncAllCatalogError(t *testing.T) {
	p := &fakePlatform{catalogErr: errors.New("502 from platform")}
	r := newTestReconciler(p)

	_, err := r.SyncAll(context.Background(), enabledPolicy())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query catalog")
}
