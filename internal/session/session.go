// Package session coordinates the praise lifecycle: it owns the current
// profile, favorites and praise slot, drives the generator, feeds results
// into the activity log and achievement engine, and is the only place
// persistence keys are read or written.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/achievements"
	"github.com/ahmetunaluzun/beni-ov/internal/activity"
	"github.com/ahmetunaluzun/beni-ov/internal/backup"
	"github.com/ahmetunaluzun/beni-ov/internal/models"
	"github.com/ahmetunaluzun/beni-ov/internal/notify"
	"github.com/ahmetunaluzun/beni-ov/internal/praise"
	"github.com/ahmetunaluzun/beni-ov/internal/stats"
	"github.com/ahmetunaluzun/beni-ov/internal/storage"
)

// State is the phase of the single current-praise slot.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

var (
	ErrNoProfile        = errors.New("no profile set")
	ErrGenerating       = errors.New("a generation request is already in flight")
	ErrNoPraise         = errors.New("no praise to act on")
	ErrAlreadyFavorited = errors.New("already in favorites")
	ErrNotFavorited     = errors.New("not in favorites")
)

// Session is the coordinator. It is single-user and not safe for
// concurrent use; the presentation layer serializes actions.
type Session struct {
	store     *storage.Store
	generator *praise.Generator
	notify    *notify.Service

	state         State
	profile       *models.Profile
	favorites     []string
	currentPraise string
	lastError     string

	totalPraises    int
	totalShares     int
	stylesUsed      map[models.PraiseStyle]int
	dailyActivities []models.DailyActivity
	lastPraiseDate  *time.Time
	achievements    []models.Achievement
	settings        models.Settings

	now func() time.Time
}

// New loads persisted state from the store, falling back to defaults for
// any missing or corrupt key. A persisted praise slot restores the
// session straight into Ready, so favoriting and sharing work across
// process restarts.
func New(store *storage.Store, generator *praise.Generator, notifier notify.Notifier) *Session {
	s := &Session{
		store:      store,
		generator:  generator,
		state:      StateIdle,
		stylesUsed: make(map[models.PraiseStyle]int),
		now:        time.Now,
	}

	var profile models.Profile
	if store.GetJSON(storage.KeyProfile, &profile) {
		s.profile = &profile
	}
	if store.GetJSON(storage.KeyCurrentPraise, &s.currentPraise) && s.currentPraise != "" {
		s.state = StateReady
	}
	store.GetJSON(storage.KeyFavorites, &s.favorites)
	store.GetJSON(storage.KeyTotalPraises, &s.totalPraises)
	store.GetJSON(storage.KeyTotalShares, &s.totalShares)
	store.GetJSON(storage.KeyStylesUsed, &s.stylesUsed)
	store.GetJSON(storage.KeyDailyActivities, &s.dailyActivities)
	store.GetJSON(storage.KeyLastPraiseDate, &s.lastPraiseDate)
	if !store.GetJSON(storage.KeyAchievements, &s.achievements) {
		s.achievements = achievements.NewState()
	}
	s.settings.Theme = "purple"
	store.GetJSON(storage.KeyTheme, &s.settings.Theme)
	s.settings.Notifications = models.DefaultNotificationSettings()
	store.GetJSON(storage.KeyNotificationSettings, &s.settings.Notifications)

	s.notify = notify.NewService(notifier, s.settings.Notifications)
	return s
}

func (s *Session) State() State { return s.state }

func (s *Session) CurrentPraise() string { return s.currentPraise }

func (s *Session) LastError() string { return s.lastError }

func (s *Session) Profile() *models.Profile { return s.profile }

func (s *Session) Favorites() []string { return s.favorites }

func (s *Session) Theme() string { return s.settings.Theme }

// Achievements returns the current unlock state in catalog order.
func (s *Session) Achievements() []models.Achievement { return s.achievements }

// IsFavorited reports whether the current praise is already a favorite.
func (s *Session) IsFavorited() bool {
	for _, f := range s.favorites {
		if f == s.currentPraise {
			return true
		}
	}
	return false
}

// SaveProfile validates and persists the profile. The first save, or any
// edit that changes the name, style or occasion while a praise is on
// screen, invalidates the stale praise and triggers regeneration.
func (s *Session) SaveProfile(ctx context.Context, p models.Profile) ([]models.Achievement, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.SpecialOccasion == "" {
		p.SpecialOccasion = models.OccasionNone
	}

	regenerate := s.profile == nil || s.currentPraise == ""
	if s.profile != nil && (s.profile.Name != p.Name ||
		s.profile.PraiseStyle != p.PraiseStyle ||
		s.profile.SpecialOccasion != p.SpecialOccasion) {
		regenerate = true
	}

	s.profile = &p
	if err := s.store.SetJSON(storage.KeyProfile, p); err != nil {
		return nil, err
	}

	if !regenerate {
		return nil, nil
	}
	s.currentPraise = ""
	if err := s.store.Delete(storage.KeyCurrentPraise); err != nil {
		slog.Error("failed to clear praise slot", "error", err)
	}
	return s.Generate(ctx)
}

// Generate runs one praise generation. Exactly one request may be in
// flight; a superseding request is rejected, not raced. On success the
// praise event is recorded, the style bucket incremented, the last
// praise date updated and achievements evaluated against the fresh
// snapshot; newly unlocked achievements are returned for display.
func (s *Session) Generate(ctx context.Context) ([]models.Achievement, error) {
	if s.state == StateGenerating {
		return nil, ErrGenerating
	}
	if s.profile == nil {
		return nil, ErrNoProfile
	}

	s.state = StateGenerating
	s.lastError = ""

	recent := make([]string, 0, len(s.favorites)+1)
	recent = append(recent, s.favorites...)
	if s.currentPraise != "" {
		recent = append(recent, s.currentPraise)
	}

	text, err := s.generator.Generate(ctx, *s.profile, recent)
	if err != nil {
		s.state = StateFailed
		s.lastError = err.Error()
		slog.Error("praise generation failed", "action", "generate", "error", err)
		return nil, err
	}

	now := s.now()
	s.currentPraise = text
	s.state = StateReady

	s.totalPraises++
	s.stylesUsed[s.profile.PraiseStyle]++
	s.dailyActivities = activity.Record(s.dailyActivities, activity.KindPraise, now)
	s.lastPraiseDate = &now

	s.persistCounters()
	newly := s.checkAchievements(now)

	s.notify.PraiseReady(text)
	s.autoBackup()
	return newly, nil
}

// AddFavorite adds the current praise to the favorites, newest first.
// Only allowed in the Ready state; adding a praise that is already
// favorited is a no-op reported as ErrAlreadyFavorited so the caller can
// show the notice.
func (s *Session) AddFavorite() ([]models.Achievement, error) {
	if s.state != StateReady || s.currentPraise == "" {
		return nil, ErrNoPraise
	}
	if s.IsFavorited() {
		return nil, ErrAlreadyFavorited
	}

	s.favorites = append([]string{s.currentPraise}, s.favorites...)
	now := s.now()
	s.dailyActivities = activity.Record(s.dailyActivities, activity.KindFavorite, now)

	if err := s.store.SetJSON(storage.KeyFavorites, s.favorites); err != nil {
		return nil, err
	}
	s.persistActivities()

	newly := s.checkAchievements(now)
	s.autoBackup()
	return newly, nil
}

// RemoveFavorite deletes a praise from the favorites by exact text.
func (s *Session) RemoveFavorite(text string) error {
	for i, f := range s.favorites {
		if f == text {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return s.store.SetJSON(storage.KeyFavorites, s.favorites)
		}
	}
	return ErrNotFavorited
}

// Share records a share of the current praise and returns the canonical
// share payload responsibilities to the caller (link building lives in
// the share package).
func (s *Session) Share() ([]models.Achievement, error) {
	if s.state != StateReady || s.currentPraise == "" {
		return nil, ErrNoPraise
	}

	now := s.now()
	s.totalShares++
	s.dailyActivities = activity.Record(s.dailyActivities, activity.KindShare, now)

	if err := s.store.SetJSON(storage.KeyTotalShares, s.totalShares); err != nil {
		return nil, err
	}
	s.persistActivities()

	newly := s.checkAchievements(now)
	s.autoBackup()
	return newly, nil
}

// Snapshot derives the aggregate stats the achievement engine evaluates.
func (s *Session) Snapshot() models.Stats {
	current, longest := activity.Streaks(s.dailyActivities, s.now())
	return models.Stats{
		TotalPraises:   s.totalPraises,
		TotalFavorites: len(s.favorites),
		TotalShares:    s.totalShares,
		CurrentStreak:  current,
		LongestStreak:  longest,
		LastPraiseDate: s.lastPraiseDate,
		StylesUsed:     s.stylesUsed,
		Achievements:   s.achievements,
	}
}

// Statistics recomputes the read-only summary view on demand.
func (s *Session) Statistics() models.Statistics {
	now := s.now()
	current, longest := activity.Streaks(s.dailyActivities, now)
	unlocked := 0
	for _, a := range s.achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	return stats.Calculate(
		s.totalPraises, s.favorites, s.totalShares,
		s.stylesUsed, s.dailyActivities, s.lastPraiseDate,
		current, longest,
		unlocked, len(achievements.Catalog),
		now,
	)
}

// SetTheme persists the theme choice.
func (s *Session) SetTheme(theme string) error {
	s.settings.Theme = theme
	return s.store.SetJSON(storage.KeyTheme, theme)
}

func (s *Session) NotificationSettings() models.NotificationSettings {
	return s.settings.Notifications
}

// SetNotificationSettings persists and applies the notification gates.
func (s *Session) SetNotificationSettings(ns models.NotificationSettings) error {
	s.settings.Notifications = ns
	s.notify.UpdateSettings(ns)
	return s.store.SetJSON(storage.KeyNotificationSettings, ns)
}

// CreateBackup bundles the full persisted state into a snapshot.
func (s *Session) CreateBackup() models.BackupData {
	statistics := s.Statistics()
	settings := s.settings
	return backup.Create(s.profile, s.favorites, s.dailyActivities, &statistics, s.achievements, &settings)
}

// RestoreBackup replaces the persisted keys from the snapshot and
// reloads the in-memory state from the store.
func (s *Session) RestoreBackup(data models.BackupData) error {
	if err := backup.Restore(s.store, data); err != nil {
		return err
	}
	s.reload()
	return nil
}

// Reset wipes every persisted key and returns the session to first-run
// state. Achievements are recreated locked; this is the only path that
// discards unlock state, and it discards everything else with it.
func (s *Session) Reset() error {
	if err := s.store.Reset(); err != nil {
		return err
	}
	s.reload()
	s.currentPraise = ""
	s.lastError = ""
	s.state = StateIdle
	return nil
}

func (s *Session) reload() {
	fresh := New(s.store, s.generator, notify.LogNotifier{})
	fresh.notify = s.notify
	s.profile = fresh.profile
	s.favorites = fresh.favorites
	s.totalPraises = fresh.totalPraises
	s.totalShares = fresh.totalShares
	s.stylesUsed = fresh.stylesUsed
	s.dailyActivities = fresh.dailyActivities
	s.lastPraiseDate = fresh.lastPraiseDate
	s.achievements = fresh.achievements
	s.settings = fresh.settings
	s.notify.UpdateSettings(s.settings.Notifications)
}

// checkAchievements evaluates the catalog against a fresh snapshot and
// merges any unlocks into persisted state. The merge is idempotent, so
// this is safe after every qualifying event.
func (s *Session) checkAchievements(now time.Time) []models.Achievement {
	newly := achievements.Evaluate(s.Snapshot(), now)
	if len(newly) == 0 {
		return nil
	}

	s.achievements = achievements.MergeUnlocks(s.achievements, newly)
	if err := s.store.SetJSON(storage.KeyAchievements, s.achievements); err != nil {
		slog.Error("failed to persist achievements", "action", "achievements", "error", err)
	}
	s.notify.AchievementUnlocked(newly[0])
	return newly
}

func (s *Session) persistCounters() {
	keys := []struct {
		key   string
		value interface{}
	}{
		{storage.KeyCurrentPraise, s.currentPraise},
		{storage.KeyTotalPraises, s.totalPraises},
		{storage.KeyStylesUsed, s.stylesUsed},
		{storage.KeyLastPraiseDate, s.lastPraiseDate},
	}
	for _, kv := range keys {
		if err := s.store.SetJSON(kv.key, kv.value); err != nil {
			slog.Error("failed to persist state", "key", kv.key, "error", err)
		}
	}
	s.persistActivities()
}

func (s *Session) persistActivities() {
	if err := s.store.SetJSON(storage.KeyDailyActivities, s.dailyActivities); err != nil {
		slog.Error("failed to persist state", "key", storage.KeyDailyActivities, "error", err)
	}
}

func (s *Session) autoBackup() {
	if err := backup.AutoBackup(s.store, s.CreateBackup()); err != nil {
		slog.Error("auto backup failed", "action", "backup", "error", err)
	}
}
