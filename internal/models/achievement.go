package models

import "time"

// AchievementCategory selects the predicate an achievement is evaluated
// with.
type AchievementCategory string

const (
	CategoryPraise   AchievementCategory = "praise"
	CategoryFavorite AchievementCategory = "favorite"
	CategoryShare    AchievementCategory = "share"
	CategoryStreak   AchievementCategory = "streak"
	CategoryStyle    AchievementCategory = "style"
)

// Achievement is a monotonically-unlockable milestone. Once Unlocked is
// true it never transitions back.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Requirement int                 `json:"requirement"`
	Category    AchievementCategory `json:"category"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlocked_at,omitempty"`
}

// Stats is the aggregate snapshot the achievement engine evaluates
// against. It is derived on demand and never a source of truth.
type Stats struct {
	TotalPraises   int                 `json:"total_praises"`
	TotalFavorites int                 `json:"total_favorites"`
	TotalShares    int                 `json:"total_shares"`
	CurrentStreak  int                 `json:"current_streak"`
	LongestStreak  int                 `json:"longest_streak"`
	LastPraiseDate *time.Time          `json:"last_praise_date"`
	StylesUsed     map[PraiseStyle]int `json:"styles_used"`
	Achievements   []Achievement       `json:"achievements"`
}

// StyleUsage is one row of the style histogram view.
type StyleUsage struct {
	Style      PraiseStyle `json:"style"`
	Count      int         `json:"count"`
	Percentage int         `json:"percentage"`
}

// Statistics is the read-only summary view shown on the stats screen.
type Statistics struct {
	TotalPraises   int `json:"total_praises"`
	TotalFavorites int `json:"total_favorites"`
	TotalShares    int `json:"total_shares"`
	TotalDays      int `json:"total_days"`

	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	LastPraiseDate *time.Time `json:"last_praise_date"`

	FavoriteStyle *PraiseStyle `json:"favorite_style"`
	StyleUsage    []StyleUsage `json:"style_usage"`

	DailyActivities []DailyActivity `json:"daily_activities"`
	WeeklyAverage   float64         `json:"weekly_average"`
	MonthlyAverage  float64         `json:"monthly_average"`

	FirstUsedDate string `json:"first_used_date"`
	LastUsedDate  string `json:"last_used_date"`

	AchievementsUnlocked int `json:"achievements_unlocked"`
	AchievementsTotal    int `json:"achievements_total"`
}
