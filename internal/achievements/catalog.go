// Package achievements evaluates the fixed unlock catalog against an
// aggregate snapshot. Unlocking is monotonic: once an entry is unlocked
// nothing here, or anywhere else, re-locks it.
package achievements

import "github.com/ahmetunaluzun/beni-ov/internal/models"

// Special style-category ids with their own predicates.
const (
	IDAllStyles  = "all_styles"
	IDStyleLover = "style_lover"
)

// Catalog is the static achievement catalog. Entries are evaluated and
// reported in this order.
var Catalog = []models.Achievement{
	{ID: "first_praise", Title: "First Step", Description: "You received your first praise!", Icon: "🌟", Requirement: 1, Category: models.CategoryPraise},
	{ID: "praise_10", Title: "Praise Hunter", Description: "You generated 10 praises", Icon: "✨", Requirement: 10, Category: models.CategoryPraise},
	{ID: "praise_50", Title: "Praise Master", Description: "You generated 50 praises", Icon: "💫", Requirement: 50, Category: models.CategoryPraise},
	{ID: "praise_100", Title: "Praise Legend", Description: "You generated 100 praises!", Icon: "🌠", Requirement: 100, Category: models.CategoryPraise},

	{ID: "first_favorite", Title: "First Favorite", Description: "You added your first favorite", Icon: "❤️", Requirement: 1, Category: models.CategoryFavorite},
	{ID: "favorite_10", Title: "Collector", Description: "You collected 10 favorites", Icon: "💖", Requirement: 10, Category: models.CategoryFavorite},
	{ID: "favorite_25", Title: "Treasure Hunter", Description: "You gathered 25 favorites", Icon: "💝", Requirement: 25, Category: models.CategoryFavorite},

	{ID: "first_share", Title: "Sharer", Description: "You shared your first praise", Icon: "📤", Requirement: 1, Category: models.CategoryShare},
	{ID: "share_10", Title: "Motivation Envoy", Description: "You shared 10 praises", Icon: "📣", Requirement: 10, Category: models.CategoryShare},

	{ID: "streak_3", Title: "3-Day Streak", Description: "Praise on 3 days in a row", Icon: "🔥", Requirement: 3, Category: models.CategoryStreak},
	{ID: "streak_7", Title: "1-Week Streak", Description: "Praise on 7 days in a row", Icon: "⚡", Requirement: 7, Category: models.CategoryStreak},
	{ID: "streak_30", Title: "1-Month Streak", Description: "Praise on 30 days in a row", Icon: "💪", Requirement: 30, Category: models.CategoryStreak},

	{ID: IDAllStyles, Title: "Style Expert", Description: "You tried every style", Icon: "🎨", Requirement: models.StyleCount, Category: models.CategoryStyle},
	{ID: IDStyleLover, Title: "Style Lover", Description: "20 praises in the same style", Icon: "🎭", Requirement: 20, Category: models.CategoryStyle},
}

// NewState returns the first-run achievement state: the full catalog,
// all locked.
func NewState() []models.Achievement {
	state := make([]models.Achievement, len(Catalog))
	copy(state, Catalog)
	return state
}
