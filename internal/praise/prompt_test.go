package praise

import (
	"strings"
	"testing"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

func TestBuildPromptFreeText(t *testing.T) {
	p := models.Profile{
		Name:            "Deniz",
		Age:             42,
		Gender:          models.GenderOther,
		PraiseStyle:     models.StyleHumorous,
		SpecialOccasion: models.OccasionNone,
	}

	prompt := BuildPrompt(p, []string{"earlier text"})

	for _, want := range []string{"Deniz", "42", "Witty and Humorous", "earlier text", "1-2 sentences"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "SPECIAL OCCASION") {
		t.Fatalf("occasion section present for occasion none:\n%s", prompt)
	}
}

func TestBuildPromptInjectsOccasion(t *testing.T) {
	p := models.Profile{
		Name:            "Deniz",
		Age:             42,
		Gender:          models.GenderMale,
		PraiseStyle:     models.StyleSincere,
		SpecialOccasion: models.OccasionBirthday,
	}

	prompt := BuildPrompt(p, nil)
	if !strings.Contains(prompt, "SPECIAL OCCASION") || !strings.Contains(prompt, "birthday") {
		t.Fatalf("birthday occasion not injected:\n%s", prompt)
	}
}

func TestBuildPromptAcrostic(t *testing.T) {
	p := models.Profile{
		Name:            "Mira",
		Age:             8,
		Gender:          models.GenderFemale,
		PraiseStyle:     models.StyleAcrostic,
		SpecialOccasion: models.OccasionNone,
	}

	prompt := BuildPrompt(p, nil)
	if !strings.Contains(prompt, "acrostic poem") {
		t.Fatalf("acrostic template not used:\n%s", prompt)
	}
	if !strings.Contains(prompt, `Every line must begin with a letter of the name "Mira"`) {
		t.Fatalf("per-letter line rule missing:\n%s", prompt)
	}
}

func TestEveryStyleAndOccasionHasInstruction(t *testing.T) {
	for _, style := range models.PraiseStyles {
		inst, ok := styleInstructions[style]
		if !ok || inst.Description == "" {
			t.Fatalf("style %q has no instruction", style)
		}
	}
	for _, occasion := range models.SpecialOccasions {
		text, ok := occasionTexts[occasion]
		if !ok {
			t.Fatalf("occasion %q has no instruction", occasion)
		}
		if occasion == models.OccasionNone && text != "" {
			t.Fatalf("occasion none must inject nothing, got %q", text)
		}
		if occasion != models.OccasionNone && text == "" {
			t.Fatalf("occasion %q has empty instruction", occasion)
		}
	}
}
