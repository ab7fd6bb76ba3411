package edgecases

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mrsinham/screenforge/internal/util"
)

func TestApplicator_ShouldApply(t *testing.T) {
	config := Config{Percentage: 50, Types: []EdgeCaseType{SpecialChars}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	applied := 0
	for i := 0; i < 100; i++ {
		if app.ShouldApply() {
			applied++
		}
	}
	// roughly half, with room for randomness
	if applied < 30 || applied > 70 {
		t.Errorf("50%% should apply ~50 times in 100, got %d", applied)
	}
}

func TestApplicator_ShouldApply_Disabled(t *testing.T) {
	app := NewApplicator(Config{Percentage: 100}, rand.New(rand.NewPCG(1, 1)))
	if app.ShouldApply() {
		t.Error("no types configured, nothing should apply")
	}
}

func TestApplicator_ApplyToPatientName(t *testing.T) {
	app := NewApplicator(Config{Percentage: 100, Types: []EdgeCaseType{SpecialChars}}, rand.New(rand.NewPCG(42, 42)))
	if name := app.ApplyToPatientName("M", "Иван Петров"); name == "Иван Петров" {
		t.Error("special-chars should modify the name")
	}

	app = NewApplicator(Config{Percentage: 100, Types: []EdgeCaseType{LongNames}}, rand.New(rand.NewPCG(42, 42)))
	name := app.ApplyToPatientName("F", "Мария Петрова")
	if n := utf8.RuneCountInString(name); n < 30 || n > MaxFieldLength {
		t.Errorf("long name has %d runes: %q", n, name)
	}
}

func TestApplicator_ApplyToPatientID(t *testing.T) {
	app := NewApplicator(Config{Percentage: 100, Types: []EdgeCaseType{VariedIDs}}, rand.New(rand.NewPCG(42, 42)))
	if id := app.ApplyToPatientID("1234567890"); id == "1234567890" {
		t.Error("varied-ids should modify the ID")
	}

	app = NewApplicator(Config{Percentage: 100, Types: []EdgeCaseType{PartialDates}}, rand.New(rand.NewPCG(42, 42)))
	if id := app.ApplyToPatientID("1234567890"); id != "1234567890" {
		t.Errorf("partial-dates should not touch the ID, got %q", id)
	}
}

func TestApplicator_ApplyToBirthDate(t *testing.T) {
	app := NewApplicator(Config{Percentage: 100, Types: []EdgeCaseType{PartialDates}}, rand.New(rand.NewPCG(5, 5)))
	partial := regexp.MustCompile(`^(\d{2}\.)?1975$`)
	for i := 0; i < 10; i++ {
		if got := app.ApplyToBirthDate("14.03.1975"); !partial.MatchString(got) {
			t.Errorf("ApplyToBirthDate() = %q, want yyyy or mm.yyyy", got)
		}
	}
}

func TestApplicator_FieldsToOmit(t *testing.T) {
	app := NewApplicator(Config{Percentage: 100, Types: []EdgeCaseType{MissingFields}}, rand.New(rand.NewPCG(42, 42)))
	for i := 0; i < 20; i++ {
		fields := app.FieldsToOmit()
		if len(fields) < 1 || len(fields) > 3 {
			t.Fatalf("expected 1-3 fields, got %v", fields)
		}
		for _, f := range fields {
			if f == util.FieldPatientID || f == util.FieldFullName {
				t.Errorf("%s must never be omitted", f)
			}
		}
	}

	app = NewApplicator(Config{Percentage: 100, Types: []EdgeCaseType{SpecialChars}}, rand.New(rand.NewPCG(42, 42)))
	if fields := app.FieldsToOmit(); len(fields) != 0 {
		t.Errorf("missing-fields not enabled, got %v", fields)
	}
}

func TestGenerateVariedPatientID(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	tests := []struct {
		format  IDFormat
		pattern string
	}{
		{IDWithDashes, `^\d{3}-\d{3}-\d{3}$`},
		{IDWithLetters, `^([A-Z]\d){5}$`},
		{IDWithSpaces, `^PAT \d{5} \d{2}$`},
		{IDLong, `^[A-Z0-9]{64}$`},
		{IDShort, `^\d{1,3}$`},
	}
	for _, tc := range tests {
		re := regexp.MustCompile(tc.pattern)
		for i := 0; i < 10; i++ {
			if id := GenerateVariedPatientID(tc.format, rng); !re.MatchString(id) {
				t.Errorf("format %d: %q does not match %s", tc.format, id, tc.pattern)
			}
		}
	}
}

func TestGenerateSpecialCharName(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	for i := 0; i < 20; i++ {
		name := GenerateSpecialCharName("F", rng)
		if len(strings.Fields(name)) != 2 {
			t.Errorf("name should be 'First Last', got %q", name)
		}
	}
}

func TestGeneratePartialDate_InvalidOriginal(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	re := regexp.MustCompile(`^(\d{2}\.)?\d{4}$`)
	for i := 0; i < 10; i++ {
		if got := GeneratePartialDate("", rng); !re.MatchString(got) {
			t.Errorf("GeneratePartialDate(\"\") = %q", got)
		}
	}
}
