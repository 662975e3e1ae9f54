package praise

import (
	"fmt"
	"strings"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

// SystemInstruction frames every generation call.
const SystemInstruction = "You are a warm-hearted, motivating character who sees the potential " +
	"inside people. Your purpose is to brighten someone's day with personal, meaningful praise. " +
	"Your voice is wise yet modern and sincere."

type styleInstruction struct {
	Name        string
	Description string
}

var styleInstructions = map[models.PraiseStyle]styleInstruction{
	models.StyleMotivational: {
		Name:        "Motivational",
		Description: "The praise should feel inspiring, motivating and personal, in a tone fitting the person's name and age.",
	},
	models.StyleHumorous: {
		Name:        "Witty and Humorous",
		Description: "The praise should be clever and funny. Aim to make the person laugh, but never be hurtful or condescending. Use a positive, kind sense of humor.",
	},
	models.StyleLoving: {
		Name:        "Loving",
		Description: "The praise should be deeply warm, affectionate and heartfelt. Make the person feel valued and loved, with a tender, sincere tone.",
	},
	models.StyleHeroic: {
		Name:        "Heroic",
		Description: "The praise should exalt the person's strength, courage and potential as if they were a hero. Use epic, grand, powerful language.",
	},
	models.StylePoetic: {
		Name:        "Poetic",
		Description: "The praise should be written in an artistic, literary, poetic register. Create depth of meaning through metaphor, simile and an aesthetic use of language.",
	},
	models.StyleSincere: {
		Name:        "Sincere",
		Description: "The praise should be unaffected, honest and direct. Instead of ornate words, express a realistic, meaningful appreciation straight from the heart, focused on the person's character or actions.",
	},
	models.StyleFriendly: {
		Name:        "Friendly",
		Description: "The praise should sound like a close friend talking: relaxed, warm and supportive. Keep a natural conversational feel, lightly humorous but with positive support as the main focus.",
	},
	models.StyleAcrostic: {
		Name:        "Acrostic",
		Description: "The praise should be an acrostic poem built from the letters of the person's name. Every line reflects a positive trait or a kind wish for them. Make it meaningful and creative.",
	},
}

var occasionTexts = map[models.SpecialOccasion]string{
	models.OccasionNone:          "",
	models.OccasionBirthday:      "TODAY IS A SPECIAL DAY! It is their birthday. Celebrate their new age and offer the warmest wishes for the year ahead.",
	models.OccasionMothersDay:    "MOTHER'S DAY! Celebrate motherhood. Praise her devotion, sacrifice and love, and show gratitude.",
	models.OccasionFathersDay:    "FATHER'S DAY! Celebrate fatherhood. Praise his strength, support and guidance, and offer thanks.",
	models.OccasionValentinesDay: "VALENTINE'S DAY! A celebration of love. Be romantic, passionate and affectionate; praise the relationship and the love.",
	models.OccasionNewYear:       "NEW YEAR CELEBRATION! Capture the new-year spirit. Reflect on the past year, give hope for the new one and wish success.",
	models.OccasionWedding:       "WEDDING DAY! A marriage celebration. Celebrate the union, the love and the new life ahead with the best wishes.",
	models.OccasionAnniversary:   "A SPECIAL ANNIVERSARY! A wedding or relationship anniversary. Celebrate the years together and the love.",
	models.OccasionBabyBirth:     "A NEW LIFE! A baby has been born. Celebrate becoming a parent, the new life and the joy.",
	models.OccasionPromotion:     "A PROMOTION! A career milestone. Praise the success, the effort and the merit, and wish luck in the new role.",
	models.OccasionTeachersDay:   "TEACHERS' DAY! Celebrate the teaching profession. Praise the value of education and of the teacher, and show gratitude.",
	models.OccasionThanks:        "A THANK YOU! A special message of thanks. Express gratitude, appreciation and indebtedness sincerely.",
	models.OccasionNewJob:        "A NEW BEGINNING! They started a new job. Celebrate the career step and wish success on the new journey.",
	models.OccasionGraduation:    "GRADUATION JOY! They graduated. Celebrate the accomplishment and give strength for the goals ahead.",
	models.OccasionAchievement:   "A GREAT ACHIEVEMENT! They accomplished something important. Celebrate the effort and the success in a special way.",
}

// BuildPrompt assembles the provider prompt for the profile: the style
// instruction, the occasion instruction when one applies, and the
// explicit constraint that the result must not repeat any recent text.
// The acrostic style switches to a verse template with one line per
// letter of the name.
func BuildPrompt(profile models.Profile, recentTexts []string) string {
	style := styleInstructions[profile.PraiseStyle]

	occasion := ""
	if profile.SpecialOccasion != "" && profile.SpecialOccasion != models.OccasionNone {
		occasion = occasionTexts[profile.SpecialOccasion]
	}

	dedup := fmt.Sprintf("It must absolutely NOT be one of these previously generated texts: %q", strings.Join(recentTexts, `", "`))

	var b strings.Builder
	if profile.PraiseStyle == models.StyleAcrostic {
		fmt.Fprintf(&b, "Write me an acrostic poem from the name %q.\n", profile.Name)
		fmt.Fprintf(&b, "- About the person: Age: %d, Gender: %s\n", profile.Age, profile.Gender)
		b.WriteString("- Requested style: Acrostic (poetic, meaningful and complimentary)\n")
		if occasion != "" {
			fmt.Fprintf(&b, "- SPECIAL OCCASION: %s\n", occasion)
		}
		b.WriteString("\nRules:\n")
		fmt.Fprintf(&b, "1. %s\n", style.Description)
		fmt.Fprintf(&b, "2. Every line must begin with a letter of the name %q, in order.\n", profile.Name)
		b.WriteString("3. The poem must be personal, meaningful and complimentary.\n")
		if occasion != "" {
			b.WriteString("4. The SPECIAL OCCASION must be reflected in the poem!\n")
		}
		fmt.Fprintf(&b, "- %s\n", dedup)
		b.WriteString("- Your answer must contain only the text of the acrostic poem. No explanation, heading or quotation marks. Put every line on its own line.\n")
	} else {
		b.WriteString("Create a single, sincere and creative praise sentence for a person with these details:\n")
		fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
		fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
		fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender)
		fmt.Fprintf(&b, "- Requested style: %s\n", style.Name)
		if occasion != "" {
			fmt.Fprintf(&b, "- SPECIAL OCCASION: %s\n", occasion)
		}
		b.WriteString("\nRules:\n")
		fmt.Fprintf(&b, "1. %s\n", style.Description)
		if occasion != "" {
			b.WriteString("2. The SPECIAL OCCASION must be reflected in the praise! This is very important!\n")
		}
		fmt.Fprintf(&b, "- %s\n", dedup)
		b.WriteString("- Your answer must contain only the praise text. No explanation, heading or quotation marks, just plain text.\n")
		b.WriteString("- The praise must be short and effective, at most 1-2 sentences.\n")
	}
	return b.String()
}
