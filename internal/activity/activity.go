// Package activity maintains the append-only per-day counters of user
// actions and derives streaks from the dated sequence.
package activity

import (
	"sort"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

// Kind is the action being recorded.
type Kind string

const (
	KindPraise   Kind = "praise"
	KindFavorite Kind = "favorite"
	KindShare    Kind = "share"
)

// Record returns a new log with one event of the given kind counted
// against today. If a record for today exists its counter is
// incremented, otherwise a fresh record is appended. The input slice is
// never mutated, so the caller can persist old and new transactionally.
func Record(log []models.DailyActivity, kind Kind, now time.Time) []models.DailyActivity {
	today := models.DayKey(now)

	updated := make([]models.DailyActivity, len(log))
	copy(updated, log)

	for i := range updated {
		if updated[i].Date == today {
			bump(&updated[i], kind)
			return updated
		}
	}

	entry := models.DailyActivity{Date: today}
	bump(&entry, kind)
	return append(updated, entry)
}

func bump(a *models.DailyActivity, kind Kind) {
	switch kind {
	case KindPraise:
		a.PraisesGenerated++
	case KindFavorite:
		a.FavoritesAdded++
	case KindShare:
		a.SharesCount++
	}
}

// Streaks derives the current and longest streak from the log.
//
// The current streak counts consecutive calendar days walking backward
// from today with no gap; it is zero when today has no record. The
// longest streak is the maximum run of consecutive-by-one-day dates
// anywhere in the log, floored at the current streak.
//
// Days are calendar days in now's location; a timezone change or DST
// shift mid-streak moves the day boundary with the wall clock.
func Streaks(log []models.DailyActivity, now time.Time) (current, longest int) {
	if len(log) == 0 {
		return 0, 0
	}

	days := make([]time.Time, 0, len(log))
	for _, a := range log {
		d, err := time.ParseInLocation("2006-01-02", a.Date, now.Location())
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i, d := range days {
		if !d.Equal(today.AddDate(0, 0, -i)) {
			break
		}
		current++
	}

	if len(days) > 0 {
		longest = 1
	}
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	if current > longest {
		longest = current
	}
	return current, longest
}
