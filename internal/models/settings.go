package models

import (
	"time"

	"github.com/google/uuid"
)

// ReminderTime is the local wall-clock time of the daily reminder.
type ReminderTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NotificationSettings gates the fire-and-forget notification calls.
// Nothing is sent unless Enabled and the per-event flag are both set.
type NotificationSettings struct {
	Enabled             bool         `json:"enabled"`
	DailyReminder       bool         `json:"daily_reminder"`
	ReminderTime        ReminderTime `json:"reminder_time"`
	PraiseGenerated     bool         `json:"praise_generated"`
	AchievementUnlocked bool         `json:"achievement_unlocked"`
}

// DefaultNotificationSettings returns the first-run settings: reminders
// configured for 09:00 but nothing delivered until the user opts in.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:             false,
		DailyReminder:       true,
		ReminderTime:        ReminderTime{Hour: 9, Minute: 0},
		PraiseGenerated:     true,
		AchievementUnlocked: true,
	}
}

// Settings bundles the non-profile preferences persisted for the user.
type Settings struct {
	Theme         string               `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`
}

// BackupData is the export snapshot. Restore replaces the corresponding
// persistence keys wholesale for every section present in the blob.
// Activities is the complete activity log; the Statistics view only
// carries a truncated window of it.
type BackupData struct {
	Version      string          `json:"version"`
	ID           uuid.UUID       `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	Profile      *Profile        `json:"profile,omitempty"`
	Favorites    []string        `json:"favorites"`
	Activities   []DailyActivity `json:"activities,omitempty"`
	Statistics   *Statistics     `json:"statistics,omitempty"`
	Achievements []Achievement   `json:"achievements"`
	Settings     *Settings       `json:"settings,omitempty"`
}
