package settings

import (
	"context"
	"sync"

	"app/models"
)

// MemStore is an in-memory Store for tests and local development. A mutex
// keeps the replace-on-save discipline safe under concurrent requests.
type MemStore struct {
	mu            sync.Mutex
	notifications *models.NotificationSettings
	visibility    *models.VisibilityPolicy
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) NotificationSettings(context.Context) (models.NotificationSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notifications == nil {
		return defaultNotificationSettings(), nil
	}
	return *s.notifications, nil
}

func (s *MemStore) SaveNotificationSettings(_ context.Context, v models.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = &v
	return nil
}

func (s *MemStore) VisibilityPolicy(context.Context) (models.VisibilityPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visibility == nil {
		return defaultVisibilityPolicy(), nil
	}
	return *s.visibility, nil
}

func (s *MemStore) SaveVisibilityPolicy(_ context.Context, v models.VisibilityPolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visibility = &v
	return nil
}
