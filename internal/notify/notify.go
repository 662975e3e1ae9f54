// Package notify is the boundary to the device notification capability.
// Delivery is fire-and-forget; nothing in the core depends on it
// succeeding.
package notify

import (
	"log/slog"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

// Notification tags, one per event family.
const (
	TagPraise      = "praise"
	TagAchievement = "achievement"
	TagReminder    = "daily-praise"
)

// Notifier delivers a local notification.
type Notifier interface {
	Notify(title, body, tag string)
}

// LogNotifier writes notifications to the structured log. It stands in
// for the platform notification surface, which lives outside the core.
type LogNotifier struct{}

func (LogNotifier) Notify(title, body, tag string) {
	slog.Info("notification", "title", title, "body", body, "tag", tag)
}

// Service gates notifications on the user's settings before handing them
// to the underlying notifier.
type Service struct {
	notifier Notifier
	settings models.NotificationSettings
}

func NewService(notifier Notifier, settings models.NotificationSettings) *Service {
	return &Service{notifier: notifier, settings: settings}
}

// UpdateSettings swaps the gating settings.
func (s *Service) UpdateSettings(settings models.NotificationSettings) {
	s.settings = settings
}

// PraiseReady announces a freshly generated praise. The body is capped
// at 100 characters.
func (s *Service) PraiseReady(praise string) {
	if !s.settings.Enabled || !s.settings.PraiseGenerated {
		return
	}
	body := praise
	if runes := []rune(body); len(runes) > 100 {
		body = string(runes[:100])
	}
	s.notifier.Notify("✨ Your new praise is ready!", body, TagPraise)
}

// AchievementUnlocked announces a newly unlocked achievement.
func (s *Service) AchievementUnlocked(a models.Achievement) {
	if !s.settings.Enabled || !s.settings.AchievementUnlocked {
		return
	}
	s.notifier.Notify("🏆 New achievement!", a.Icon+" "+a.Title, TagAchievement)
}

// NextReminder returns the next instant the daily reminder should fire:
// today at the configured time, or tomorrow if that has already passed.
func NextReminder(settings models.NotificationSettings, now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(),
		settings.ReminderTime.Hour, settings.ReminderTime.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
