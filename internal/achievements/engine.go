package achievements

import (
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

// Evaluate compares the snapshot against every catalog entry that the
// snapshot's own achievement state does not already mark unlocked, and
// returns the newly unlocked entries stamped with now, in catalog order.
//
// It decides purely on the unlock flags and the forward thresholds: an
// entry already unlocked stays skipped even if a counter has (wrongly)
// moved backward, so calling this after every qualifying event can never
// duplicate or revoke an unlock. The caller merges the result into
// persisted state with MergeUnlocks.
func Evaluate(snapshot models.Stats, now time.Time) []models.Achievement {
	unlocked := make(map[string]bool, len(snapshot.Achievements))
	for _, a := range snapshot.Achievements {
		if a.Unlocked {
			unlocked[a.ID] = true
		}
	}

	var newly []models.Achievement
	for _, def := range Catalog {
		if unlocked[def.ID] {
			continue
		}
		if !met(def, snapshot) {
			continue
		}
		at := now
		def.Unlocked = true
		def.UnlockedAt = &at
		newly = append(newly, def)
	}
	return newly
}

func met(def models.Achievement, s models.Stats) bool {
	switch def.Category {
	case models.CategoryPraise:
		return s.TotalPraises >= def.Requirement
	case models.CategoryFavorite:
		return s.TotalFavorites >= def.Requirement
	case models.CategoryShare:
		return s.TotalShares >= def.Requirement
	case models.CategoryStreak:
		return s.CurrentStreak >= def.Requirement || s.LongestStreak >= def.Requirement
	case models.CategoryStyle:
		switch def.ID {
		case IDAllStyles:
			distinct := 0
			for _, count := range s.StylesUsed {
				if count > 0 {
					distinct++
				}
			}
			return distinct >= def.Requirement
		case IDStyleLover:
			for _, count := range s.StylesUsed {
				if count >= def.Requirement {
					return true
				}
			}
		}
	}
	return false
}

// MergeUnlocks folds newly unlocked entries into the current state,
// matching by id. It is the single place the monotonic-unlock invariant
// is enforced: an entry that is already unlocked is never overwritten,
// so a repeated merge of the same unlock is a no-op.
func MergeUnlocks(current, newly []models.Achievement) []models.Achievement {
	if len(newly) == 0 {
		return current
	}

	updated := make([]models.Achievement, len(current))
	copy(updated, current)

	for _, unlock := range newly {
		for i := range updated {
			if updated[i].ID != unlock.ID {
				continue
			}
			if !updated[i].Unlocked {
				updated[i] = unlock
			}
			break
		}
	}
	return updated
}
