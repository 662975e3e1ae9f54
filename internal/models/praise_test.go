package models

import (
	"testing"
	"time"
)

func validProfile() Profile {
	return Profile{
		Name:            "Mehmet",
		Age:             35,
		Gender:          GenderMale,
		PraiseStyle:     StyleSincere,
		SpecialOccasion: OccasionNone,
	}
}

func TestProfileValidate(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"empty name", func(p *Profile) { p.Name = "" }},
		{"whitespace name", func(p *Profile) { p.Name = "   " }},
		{"age zero", func(p *Profile) { p.Age = 0 }},
		{"age too high", func(p *Profile) { p.Age = 121 }},
		{"unknown gender", func(p *Profile) { p.Gender = "robot" }},
		{"unknown style", func(p *Profile) { p.PraiseStyle = "operatic" }},
		{"unknown occasion", func(p *Profile) { p.SpecialOccasion = "leap_day" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestProfileValidateAgeBounds(t *testing.T) {
	p := validProfile()
	for _, age := range []int{1, 120} {
		p.Age = age
		if err := p.Validate(); err != nil {
			t.Fatalf("age %d rejected: %v", age, err)
		}
	}
}

func TestEmptyOccasionAllowed(t *testing.T) {
	p := validProfile()
	p.SpecialOccasion = ""
	if err := p.Validate(); err != nil {
		t.Fatalf("empty occasion rejected: %v", err)
	}
}

func TestStyleCountMatchesCanonicalOrder(t *testing.T) {
	if len(PraiseStyles) != StyleCount {
		t.Fatalf("PraiseStyles has %d entries, StyleCount is %d", len(PraiseStyles), StyleCount)
	}
}

func TestOccasionListComplete(t *testing.T) {
	if len(SpecialOccasions) != 15 {
		t.Fatalf("SpecialOccasions has %d entries, want 15", len(SpecialOccasions))
	}
	seen := map[SpecialOccasion]bool{}
	for _, o := range SpecialOccasions {
		if seen[o] {
			t.Fatalf("duplicate occasion %q", o)
		}
		seen[o] = true
	}
	if !seen[OccasionNone] {
		t.Fatal("OccasionNone missing from the list")
	}
}

func TestDayKeyUsesLocation(t *testing.T) {
	east := time.FixedZone("east", 10*3600)
	// 23:30 on the 29th in UTC is already the 30th in the east zone.
	utc := time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)

	if got := DayKey(utc); got != "2026-08-29" {
		t.Fatalf("utc key = %q", got)
	}
	if got := DayKey(utc.In(east)); got != "2026-08-30" {
		t.Fatalf("east key = %q", got)
	}
}
