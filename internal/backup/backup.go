// Package backup implements the export/restore surface: a versioned
// snapshot of every persisted state item, serializable to a blob or a
// shareable link, and restorable by wholesale key replacement.
package backup

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
	"github.com/ahmetunaluzun/beni-ov/internal/storage"
	"github.com/google/uuid"
)

// Version is the backup schema version.
const Version = "1.0.0"

var (
	ErrInvalidBackup = errors.New("invalid backup data")
	ErrNoBackupParam = errors.New("no backup parameter in URL")
)

// Create bundles the given state into a snapshot. activities is the
// full activity log, kept separately from the truncated view inside
// statistics.
func Create(profile *models.Profile, favorites []string, activities []models.DailyActivity,
	statistics *models.Statistics, achievements []models.Achievement, settings *models.Settings) models.BackupData {
	return models.BackupData{
		Version:      Version,
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		Profile:      profile,
		Favorites:    favorites,
		Activities:   activities,
		Statistics:   statistics,
		Achievements: achievements,
		Settings:     settings,
	}
}

// Encode serializes a snapshot to the backup blob format.
func Encode(data models.BackupData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// Decode parses a backup blob, rejecting blobs without a version marker.
func Decode(blob []byte) (models.BackupData, error) {
	var data models.BackupData
	if err := json.Unmarshal(blob, &data); err != nil {
		return data, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if data.Version == "" {
		return data, ErrInvalidBackup
	}
	return data, nil
}

// Restore replaces the persisted keys wholesale for every section
// present in the snapshot. Absent sections leave their keys untouched.
func Restore(store *storage.Store, data models.BackupData) error {
	if data.Version == "" {
		return ErrInvalidBackup
	}

	if data.Profile != nil {
		if err := store.SetJSON(storage.KeyProfile, data.Profile); err != nil {
			return err
		}
	}
	if data.Favorites != nil {
		if err := store.SetJSON(storage.KeyFavorites, data.Favorites); err != nil {
			return err
		}
	}
	if data.Activities != nil {
		if err := store.SetJSON(storage.KeyDailyActivities, data.Activities); err != nil {
			return err
		}
	}
	if data.Statistics != nil {
		if err := restoreStatistics(store, *data.Statistics, data.Activities == nil); err != nil {
			return err
		}
	}
	if data.Achievements != nil {
		if err := store.SetJSON(storage.KeyAchievements, data.Achievements); err != nil {
			return err
		}
	}
	if data.Settings != nil {
		if err := store.SetJSON(storage.KeyTheme, data.Settings.Theme); err != nil {
			return err
		}
		if err := store.SetJSON(storage.KeyNotificationSettings, data.Settings.Notifications); err != nil {
			return err
		}
	}
	return nil
}

// restoreStatistics writes the raw counters a statistics view was
// derived from; the view itself is recomputed on demand. The view's
// activity window is only used for snapshots predating the full
// Activities section, since the view truncates older records.
func restoreStatistics(store *storage.Store, s models.Statistics, useViewActivities bool) error {
	if err := store.SetJSON(storage.KeyTotalPraises, s.TotalPraises); err != nil {
		return err
	}
	if err := store.SetJSON(storage.KeyTotalShares, s.TotalShares); err != nil {
		return err
	}
	styles := make(map[models.PraiseStyle]int)
	for _, u := range s.StyleUsage {
		if u.Count > 0 {
			styles[u.Style] = u.Count
		}
	}
	if err := store.SetJSON(storage.KeyStylesUsed, styles); err != nil {
		return err
	}
	if useViewActivities {
		if err := store.SetJSON(storage.KeyDailyActivities, s.DailyActivities); err != nil {
			return err
		}
	}
	return store.SetJSON(storage.KeyLastPraiseDate, s.LastPraiseDate)
}

// AutoBackup persists the snapshot as the rolling automatic backup.
func AutoBackup(store *storage.Store, data models.BackupData) error {
	if err := store.SetJSON(storage.KeyAutoBackup, data); err != nil {
		return err
	}
	return store.SetJSON(storage.KeyAutoBackupDate, time.Now())
}

// LastAutoBackup returns the most recent automatic backup, if any.
func LastAutoBackup(store *storage.Store) (models.BackupData, time.Time, bool) {
	var data models.BackupData
	if !store.GetJSON(storage.KeyAutoBackup, &data) {
		return data, time.Time{}, false
	}
	var at time.Time
	store.GetJSON(storage.KeyAutoBackupDate, &at)
	return data, at, true
}

// ShareableLink encodes the snapshot into a ?backup= deep link.
func ShareableLink(baseURL string, data models.BackupData) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(url.QueryEscape(string(raw))))
	return strings.TrimRight(baseURL, "/") + "?backup=" + url.QueryEscape(encoded), nil
}

// FromLink decodes a snapshot out of a ?backup= deep link.
func FromLink(link string) (models.BackupData, error) {
	var data models.BackupData

	u, err := url.Parse(link)
	if err != nil {
		return data, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	param := u.Query().Get("backup")
	if param == "" {
		return data, ErrNoBackupParam
	}

	decoded, err := base64.StdEncoding.DecodeString(param)
	if err != nil {
		return data, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	unescaped, err := url.QueryUnescape(string(decoded))
	if err != nil {
		return data, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return Decode([]byte(unescaped))
}
