package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Fixed persistence keys, one per state item.
const (
	KeyProfile              = "profile"
	KeyCurrentPraise        = "current_praise"
	KeyFavorites            = "favorites"
	KeyTotalPraises         = "total_praises"
	KeyTotalShares          = "total_shares"
	KeyStylesUsed           = "styles_used"
	KeyDailyActivities      = "daily_activities"
	KeyLastPraiseDate       = "last_praise_date"
	KeyAchievements         = "achievements"
	KeyNotificationSettings = "notification_settings"
	KeyTheme                = "theme"
	KeyAutoBackup           = "auto_backup"
	KeyAutoBackupDate       = "auto_backup_date"
)

// AllKeys lists every key Reset removes.
var AllKeys = []string{
	KeyProfile,
	KeyCurrentPraise,
	KeyFavorites,
	KeyTotalPraises,
	KeyTotalShares,
	KeyStylesUsed,
	KeyDailyActivities,
	KeyLastPraiseDate,
	KeyAchievements,
	KeyNotificationSettings,
	KeyTheme,
	KeyAutoBackup,
	KeyAutoBackupDate,
}

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// StoreEntry is one persisted value, keyed by a fixed string identifier.
type StoreEntry struct {
	Key       string         `gorm:"primaryKey;size:100" json:"key"`
	Value     datatypes.JSON `gorm:"type:json" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Store is the generic durable key-value persistence capability. No
// transactionality is assumed across keys.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw JSON bytes stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	var entry StoreEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Set writes raw JSON bytes under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	entry := StoreEntry{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	if err := s.db.Save(&entry).Error; err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// GetJSON unmarshals the value stored under key into out. A missing or
// unparsable value leaves out untouched and returns false so the caller
// falls back to its default instead of failing the session.
func (s *Store) GetJSON(key string, out interface{}) bool {
	raw, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("stored value unreadable", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.Error("stored value corrupt, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

// SetJSON marshals v and writes it under key.
func (s *Store) SetJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Set(key, raw)
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Delete(&StoreEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Reset removes every app key.
func (s *Store) Reset() error {
	for _, key := range AllKeys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
