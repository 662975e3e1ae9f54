package stats

import (
	"testing"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

func calc(stylesUsed map[models.PraiseStyle]int, activities []models.DailyActivity) models.Statistics {
	return Calculate(0, nil, 0, stylesUsed, activities, nil, 0, 0, 0, 14, testNow)
}

func usageFor(s models.Statistics, style models.PraiseStyle) models.StyleUsage {
	for _, u := range s.StyleUsage {
		if u.Style == style {
			return u
		}
	}
	return models.StyleUsage{}
}

func TestStylePercentageRounding(t *testing.T) {
	s := calc(map[models.PraiseStyle]int{
		models.StyleMotivational: 3,
		models.StyleHumorous:     1,
	}, nil)

	if got := usageFor(s, models.StyleMotivational).Percentage; got != 75 {
		t.Fatalf("motivational percentage = %d, want 75", got)
	}
	if got := usageFor(s, models.StyleHumorous).Percentage; got != 25 {
		t.Fatalf("humorous percentage = %d, want 25", got)
	}
	if got := usageFor(s, models.StylePoetic).Percentage; got != 0 {
		t.Fatalf("unused style percentage = %d, want 0", got)
	}
}

func TestStylePercentageEmptyHistogram(t *testing.T) {
	s := calc(map[models.PraiseStyle]int{}, nil)

	if len(s.StyleUsage) != len(models.PraiseStyles) {
		t.Fatalf("expected a row per style, got %d", len(s.StyleUsage))
	}
	for _, u := range s.StyleUsage {
		if u.Percentage != 0 || u.Count != 0 {
			t.Fatalf("expected all-zero usage, got %+v", u)
		}
	}
	if s.FavoriteStyle != nil {
		t.Fatalf("expected no favorite style, got %v", *s.FavoriteStyle)
	}
}

func TestFavoriteStyleHighestCount(t *testing.T) {
	s := calc(map[models.PraiseStyle]int{
		models.StylePoetic:   5,
		models.StyleHumorous: 2,
	}, nil)

	if s.FavoriteStyle == nil || *s.FavoriteStyle != models.StylePoetic {
		t.Fatalf("expected favorite style poetic, got %v", s.FavoriteStyle)
	}
}

func TestFavoriteStyleTieBreaksByCanonicalOrder(t *testing.T) {
	// humorous precedes poetic in the canonical order; motivational
	// precedes both.
	s := calc(map[models.PraiseStyle]int{
		models.StylePoetic:       2,
		models.StyleHumorous:     2,
		models.StyleMotivational: 2,
	}, nil)

	if s.FavoriteStyle == nil || *s.FavoriteStyle != models.StyleMotivational {
		t.Fatalf("expected tie to resolve to motivational, got %v", s.FavoriteStyle)
	}
}

func TestAveragesOverExistingRecords(t *testing.T) {
	activities := []models.DailyActivity{
		{Date: "2026-08-27", PraisesGenerated: 2},
		{Date: "2026-08-28", PraisesGenerated: 3},
		{Date: "2026-08-29", PraisesGenerated: 2},
	}
	s := calc(nil, activities)

	// Fewer than 7 records: average over what exists, one decimal.
	if s.WeeklyAverage != 2.3 {
		t.Fatalf("weekly average = %v, want 2.3", s.WeeklyAverage)
	}
	if s.MonthlyAverage != 2.3 {
		t.Fatalf("monthly average = %v, want 2.3", s.MonthlyAverage)
	}
}

func TestWeeklyAverageUsesLastSevenRecords(t *testing.T) {
	var activities []models.DailyActivity
	// 3 old records with heavy counts, then 7 with exactly 1 each.
	for i := 0; i < 3; i++ {
		activities = append(activities, models.DailyActivity{
			Date: time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.Local).Format("2006-01-02"), PraisesGenerated: 10,
		})
	}
	for i := 0; i < 7; i++ {
		activities = append(activities, models.DailyActivity{
			Date: time.Date(2026, 8, 20+i, 0, 0, 0, 0, time.Local).Format("2006-01-02"), PraisesGenerated: 1,
		})
	}

	s := calc(nil, activities)
	if s.WeeklyAverage != 1.0 {
		t.Fatalf("weekly average = %v, want 1.0", s.WeeklyAverage)
	}
}

func TestAveragesEmptyLog(t *testing.T) {
	s := calc(nil, nil)
	if s.WeeklyAverage != 0 || s.MonthlyAverage != 0 {
		t.Fatalf("expected zero averages, got %v / %v", s.WeeklyAverage, s.MonthlyAverage)
	}
}

func TestTotalDaysCountsDistinctRecords(t *testing.T) {
	activities := []models.DailyActivity{
		{Date: "2026-01-01", PraisesGenerated: 1},
		{Date: "2026-03-15", PraisesGenerated: 4},
		{Date: "2026-08-30", SharesCount: 1},
	}
	s := calc(nil, activities)

	// Distinct days with activity, not elapsed calendar days.
	if s.TotalDays != 3 {
		t.Fatalf("totalDays = %d, want 3", s.TotalDays)
	}
	if s.FirstUsedDate != "2026-01-01" || s.LastUsedDate != "2026-08-30" {
		t.Fatalf("unexpected first/last used: %s / %s", s.FirstUsedDate, s.LastUsedDate)
	}
}

func TestStylesUsedSumMatchesTotalPraises(t *testing.T) {
	styles := map[models.PraiseStyle]int{
		models.StyleLoving:  4,
		models.StyleSincere: 3,
	}
	s := Calculate(7, nil, 0, styles, nil, nil, 0, 0, 0, 14, testNow)

	sum := 0
	for _, u := range s.StyleUsage {
		sum += u.Count
	}
	if sum != s.TotalPraises {
		t.Fatalf("style counts sum %d != totalPraises %d", sum, s.TotalPraises)
	}
}
