package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"app/models"
)

// Keys for the settings table; one jsonb document per key.
const (
	keyNotifications = "notifications"
	keyVisibility    = "visibility"
)

// PGStore persists settings in a single-row-per-key jsonb table. An upsert
// replaces the whole document, which keeps saves atomic.
type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

func (s *PGStore) NotificationSettings(ctx context.Context) (models.NotificationSettings, error) {
	var out models.NotificationSettings
	found, err := s.load(ctx, keyNotifications, &out)
	if err != nil {
		return out, err
	}
	if !found {
		return defaultNotificationSettings(), nil
	}
	return out, nil
}

func (s *PGStore) SaveNotificationSettings(ctx context.Context, v models.NotificationSettings) error {
	return s.save(ctx, keyNotifications, v)
}

func (s *PGStore) VisibilityPolicy(ctx context.Context) (models.VisibilityPolicy, error) {
	var out models.VisibilityPolicy
	found, err := s.load(ctx, keyVisibility, &out)
	if err != nil {
		return out, err
	}
	if !found {
		return defaultVisibilityPolicy(), nil
	}
	return out, nil
}

func (s *PGStore) SaveVisibilityPolicy(ctx context.Context, v models.VisibilityPolicy) error {
	return s.save(ctx, keyVisibility, v)
}

func (s *PGStore) load(ctx context.Context, key string, out interface{}) (bool, error) {
	var raw []byte
	err := s.DB.QueryRow(ctx, "SELECT value FROM engine_settings WHERE key = $1", key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s settings: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s settings: %w", key, err)
	}
	return true, nil
}

func (s *PGStore) save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s settings: %w", key, err)
	}
	_, err = s.DB.Exec(ctx, `
		INSERT INTO engine_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, raw)
	if err != nil {
		return fmt.Errorf("save %s settings: %w", key, err)
	}
	return nil
}
