// Package stats reduces raw counters, the activity log and the style
// histogram into the read-only statistics view. Everything here is a
// pure function; the snapshot is recomputed on demand and never stored
// as a source of truth.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

// Calculate produces the statistics view for the given raw state.
func Calculate(
	totalPraises int,
	favorites []string,
	totalShares int,
	stylesUsed map[models.PraiseStyle]int,
	dailyActivities []models.DailyActivity,
	lastPraiseDate *time.Time,
	currentStreak, longestStreak int,
	achievementsUnlocked, achievementsTotal int,
	now time.Time,
) models.Statistics {
	usage := styleUsage(stylesUsed)

	var favoriteStyle *models.PraiseStyle
	if len(usage) > 0 && usage[0].Count > 0 {
		s := usage[0].Style
		favoriteStyle = &s
	}

	sorted := make([]models.DailyActivity, len(dailyActivities))
	copy(sorted, dailyActivities)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	firstUsed := models.DayKey(now)
	lastUsed := firstUsed
	if len(sorted) > 0 {
		firstUsed = sorted[0].Date
		lastUsed = sorted[len(sorted)-1].Date
	}

	recent := sorted
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}

	return models.Statistics{
		TotalPraises:   totalPraises,
		TotalFavorites: len(favorites),
		TotalShares:    totalShares,
		TotalDays:      len(dailyActivities),

		CurrentStreak:  currentStreak,
		LongestStreak:  longestStreak,
		LastPraiseDate: lastPraiseDate,

		FavoriteStyle: favoriteStyle,
		StyleUsage:    usage,

		DailyActivities: recent,
		WeeklyAverage:   average(sorted, 7),
		MonthlyAverage:  average(sorted, 30),

		FirstUsedDate: firstUsed,
		LastUsedDate:  lastUsed,

		AchievementsUnlocked: achievementsUnlocked,
		AchievementsTotal:    achievementsTotal,
	}
}

// styleUsage builds the histogram view over the canonical style order,
// sorted by count descending. Ties keep the canonical order, so the
// favorite style of a tie is the first style in that order. A zero total
// yields zero percentages for every style.
func styleUsage(stylesUsed map[models.PraiseStyle]int) []models.StyleUsage {
	total := 0
	for _, count := range stylesUsed {
		total += count
	}

	usage := make([]models.StyleUsage, 0, len(models.PraiseStyles))
	for _, style := range models.PraiseStyles {
		count := stylesUsed[style]
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(count) / float64(total) * 100))
		}
		usage = append(usage, models.StyleUsage{Style: style, Count: count, Percentage: pct})
	}

	sort.SliceStable(usage, func(i, j int) bool { return usage[i].Count > usage[j].Count })
	return usage
}

// average is the mean of praisesGenerated over the last `days` activity
// records (records, not calendar days), rounded to one decimal place.
func average(sorted []models.DailyActivity, days int) float64 {
	recent := sorted
	if len(recent) > days {
		recent = recent[len(recent)-days:]
	}
	if len(recent) == 0 {
		return 0
	}
	total := 0
	for _, a := range recent {
		total += a.PraisesGenerated
	}
	return math.Round(float64(total)/float64(len(recent))*10) / 10
}
