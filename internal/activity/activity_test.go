package activity

import (
	"testing"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

var testNow = time.Date(2026, 8, 30, 15, 4, 0, 0, time.Local)

func day(offset int) string {
	return models.DayKey(testNow.AddDate(0, 0, offset))
}

func TestRecordCreatesTodayEntry(t *testing.T) {
	log := Record(nil, KindPraise, testNow)
	if len(log) != 1 {
		t.Fatalf("expected 1 record, got %d", len(log))
	}
	if log[0].Date != day(0) {
		t.Fatalf("expected date %s, got %s", day(0), log[0].Date)
	}
	if log[0].PraisesGenerated != 1 || log[0].FavoritesAdded != 0 || log[0].SharesCount != 0 {
		t.Fatalf("unexpected counters: %+v", log[0])
	}
}

func TestRecordSameDayIncrementsSingleRecord(t *testing.T) {
	log := Record(nil, KindPraise, testNow)
	log = Record(log, KindPraise, testNow)

	if len(log) != 1 {
		t.Fatalf("expected a single record for the day, got %d", len(log))
	}
	if log[0].PraisesGenerated != 2 {
		t.Fatalf("expected praisesGenerated = 2, got %d", log[0].PraisesGenerated)
	}
}

func TestRecordKindsUseSeparateCounters(t *testing.T) {
	log := Record(nil, KindPraise, testNow)
	log = Record(log, KindFavorite, testNow)
	log = Record(log, KindShare, testNow)
	log = Record(log, KindShare, testNow)

	if len(log) != 1 {
		t.Fatalf("expected a single record, got %d", len(log))
	}
	a := log[0]
	if a.PraisesGenerated != 1 || a.FavoritesAdded != 1 || a.SharesCount != 2 {
		t.Fatalf("unexpected counters: %+v", a)
	}
}

func TestRecordDoesNotMutateInput(t *testing.T) {
	orig := []models.DailyActivity{{Date: day(0), PraisesGenerated: 1}}
	Record(orig, KindPraise, testNow)
	if orig[0].PraisesGenerated != 1 {
		t.Fatalf("input log mutated: %+v", orig[0])
	}
}

func TestStreaksCurrentRun(t *testing.T) {
	// Activity today, yesterday and the day before; gap at -3.
	log := []models.DailyActivity{
		{Date: day(0), PraisesGenerated: 1},
		{Date: day(-1), PraisesGenerated: 2},
		{Date: day(-2), PraisesGenerated: 1},
		{Date: day(-4), PraisesGenerated: 1},
	}
	current, longest := Streaks(log, testNow)
	if current != 3 {
		t.Fatalf("expected current streak 3, got %d", current)
	}
	if longest != 3 {
		t.Fatalf("expected longest streak 3, got %d", longest)
	}
}

func TestStreaksLongestHistoricalRun(t *testing.T) {
	log := []models.DailyActivity{
		{Date: day(0), PraisesGenerated: 1},
		{Date: day(-1), PraisesGenerated: 1},
		{Date: day(-2), PraisesGenerated: 1},
	}
	// A prior isolated run of 5 consecutive days.
	for offset := -10; offset >= -14; offset-- {
		log = append(log, models.DailyActivity{Date: day(offset), PraisesGenerated: 1})
	}

	current, longest := Streaks(log, testNow)
	if current != 3 {
		t.Fatalf("expected current streak 3, got %d", current)
	}
	if longest != 5 {
		t.Fatalf("expected longest streak 5, got %d", longest)
	}
}

func TestStreaksZeroWithoutToday(t *testing.T) {
	// The day boundary is the local wall clock: one second past
	// midnight, yesterday's activity no longer counts as today.
	log := []models.DailyActivity{
		{Date: day(-1), PraisesGenerated: 1},
		{Date: day(-2), PraisesGenerated: 1},
	}
	current, longest := Streaks(log, testNow)
	if current != 0 {
		t.Fatalf("expected current streak 0 without activity today, got %d", current)
	}
	if longest != 2 {
		t.Fatalf("expected longest streak 2, got %d", longest)
	}
}

func TestStreaksIsolatedHistoricalDay(t *testing.T) {
	log := []models.DailyActivity{{Date: day(-5), PraisesGenerated: 1}}
	current, longest := Streaks(log, testNow)
	if current != 0 {
		t.Fatalf("expected current streak 0, got %d", current)
	}
	if longest != 1 {
		t.Fatalf("expected longest streak 1 for a single recorded day, got %d", longest)
	}
}

func TestStreaksEmptyLog(t *testing.T) {
	current, longest := Streaks(nil, testNow)
	if current != 0 || longest != 0 {
		t.Fatalf("expected 0/0 for empty log, got %d/%d", current, longest)
	}
}

func TestStreaksCurrentNeverExceedsLongest(t *testing.T) {
	log := []models.DailyActivity{{Date: day(0), PraisesGenerated: 1}}
	current, longest := Streaks(log, testNow)
	if current != 1 || longest != 1 {
		t.Fatalf("expected 1/1 for a single-day log, got %d/%d", current, longest)
	}
	if current > longest {
		t.Fatalf("invariant violated: current %d > longest %d", current, longest)
	}
}
