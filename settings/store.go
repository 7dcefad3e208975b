// Package settings holds the per-store engine configuration. Settings are
// replaced wholesale on save (single-writer, atomic replace) rather than
// mutated field by field.
package settings

import (
	"context"

	"app/models"
)

// Store loads and saves the store's channel configuration and visibility
// policy. Handlers receive a Store instead of touching shared globals.
type Store interface {
	NotificationSettings(ctx context.Context) (models.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, s models.NotificationSettings) error
	VisibilityPolicy(ctx context.Context) (models.VisibilityPolicy, error)
	SaveVisibilityPolicy(ctx context.Context, p models.VisibilityPolicy) error
}

// Defaults returned when a store has never saved settings.
func defaultNotificationSettings() models.NotificationSettings {
	return models.NotificationSettings{}
}

func defaultVisibilityPolicy() models.VisibilityPolicy {
	return models.VisibilityPolicy{Enabled: false, HideOutOfStock: true, ShowWhenRestocked: true}
}
