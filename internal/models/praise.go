package models

import (
	"fmt"
	"strings"
	"time"
)

// PraiseStyle is one of the 8 tonal/structural modes governing prompt
// construction. Acrostic is the only style with a structural contract
// (one verse line per letter of the name).
type PraiseStyle string

const (
	StyleMotivational PraiseStyle = "motivational"
	StyleHumorous     PraiseStyle = "humorous"
	StyleLoving       PraiseStyle = "loving"
	StyleHeroic       PraiseStyle = "heroic"
	StylePoetic       PraiseStyle = "poetic"
	StyleSincere      PraiseStyle = "sincere"
	StyleFriendly     PraiseStyle = "friendly"
	StyleAcrostic     PraiseStyle = "acrostic"
)

// PraiseStyles is the canonical style order. Tie-breaks in statistics
// resolve to the earliest entry here.
var PraiseStyles = []PraiseStyle{
	StyleMotivational,
	StyleHumorous,
	StyleLoving,
	StyleHeroic,
	StylePoetic,
	StyleSincere,
	StyleFriendly,
	StyleAcrostic,
}

// StyleCount is the number of distinct praise styles.
const StyleCount = 8

// SpecialOccasion is an optional fixed context injected into the prompt.
// OccasionNone injects nothing.
type SpecialOccasion string

const (
	OccasionNone          SpecialOccasion = "none"
	OccasionBirthday      SpecialOccasion = "birthday"
	OccasionMothersDay    SpecialOccasion = "mothers_day"
	OccasionFathersDay    SpecialOccasion = "fathers_day"
	OccasionValentinesDay SpecialOccasion = "valentines_day"
	OccasionNewYear       SpecialOccasion = "new_year"
	OccasionWedding       SpecialOccasion = "wedding"
	OccasionAnniversary   SpecialOccasion = "anniversary"
	OccasionBabyBirth     SpecialOccasion = "baby_birth"
	OccasionPromotion     SpecialOccasion = "promotion"
	OccasionTeachersDay   SpecialOccasion = "teachers_day"
	OccasionThanks        SpecialOccasion = "thanks"
	OccasionNewJob        SpecialOccasion = "new_job"
	OccasionGraduation    SpecialOccasion = "graduation"
	OccasionAchievement   SpecialOccasion = "achievement"
)

// SpecialOccasions lists every occasion including "none".
var SpecialOccasions = []SpecialOccasion{
	OccasionNone,
	OccasionBirthday,
	OccasionMothersDay,
	OccasionFathersDay,
	OccasionValentinesDay,
	OccasionNewYear,
	OccasionWedding,
	OccasionAnniversary,
	OccasionBabyBirth,
	OccasionPromotion,
	OccasionTeachersDay,
	OccasionThanks,
	OccasionNewJob,
	OccasionGraduation,
	OccasionAchievement,
}

// Gender is the enumerated gender field of a profile.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// Profile describes the person praise is generated for. A change to the
// name, style, or occasion invalidates the currently displayed praise.
type Profile struct {
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Gender          Gender          `json:"gender"`
	PraiseStyle     PraiseStyle     `json:"praise_style"`
	SpecialOccasion SpecialOccasion `json:"special_occasion"`
}

// Validate checks the profile at the boundary. Components past the
// boundary assume a structurally valid profile.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < 1 || p.Age > 120 {
		return fmt.Errorf("age must be between 1 and 120")
	}
	switch p.Gender {
	case GenderFemale, GenderMale, GenderOther:
	default:
		return fmt.Errorf("invalid gender %q", p.Gender)
	}
	if !ValidStyle(p.PraiseStyle) {
		return fmt.Errorf("invalid praise style %q", p.PraiseStyle)
	}
	if p.SpecialOccasion != "" && !ValidOccasion(p.SpecialOccasion) {
		return fmt.Errorf("invalid special occasion %q", p.SpecialOccasion)
	}
	return nil
}

// ValidStyle reports whether s is one of the 8 praise styles.
func ValidStyle(s PraiseStyle) bool {
	for _, v := range PraiseStyles {
		if v == s {
			return true
		}
	}
	return false
}

// ValidOccasion reports whether o is a known occasion (including "none").
func ValidOccasion(o SpecialOccasion) bool {
	for _, v := range SpecialOccasions {
		if v == o {
			return true
		}
	}
	return false
}

// DailyActivity is the per-day counter record of the append-only activity
// log. At most one record exists per calendar date.
type DailyActivity struct {
	Date             string `json:"date"` // YYYY-MM-DD, local calendar day
	PraisesGenerated int    `json:"praises_generated"`
	FavoritesAdded   int    `json:"favorites_added"`
	SharesCount      int    `json:"shares_count"`
}

// DayKey formats t as the activity log date key in t's location.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
