package sample

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mrsinham/screenforge/internal/sample/edgecases"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(DefaultOptions(20, 42))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate(DefaultOptions(20, 42))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed gave different records (-first +second):\n%s", diff)
	}

	c, err := Generate(DefaultOptions(20, 43))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cmp.Equal(a, c) {
		t.Error("different seeds should give different records")
	}
}

func TestGenerate_Plausible(t *testing.T) {
	records, err := Generate(DefaultOptions(100, 7))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(records) != 100 {
		t.Fatalf("expected 100 records, got %d", len(records))
	}

	idPattern := regexp.MustCompile(`^[1-9]\d{9}$`)
	timePattern := regexp.MustCompile(`^(0[89]|1[0-6]):[0-5]\d$`)

	for i, r := range records {
		if missing := r.Missing(); len(missing) != 0 {
			t.Errorf("record %d has empty fields %v", i, missing)
		}
		if !idPattern.MatchString(r.PatientID) {
			t.Errorf("record %d: patient ID %q is not 10 digits", i, r.PatientID)
		}
		if !timePattern.MatchString(r.ScreeningTime) {
			t.Errorf("record %d: screening time %q outside 08:00-16:59", i, r.ScreeningTime)
		}

		dob, err := time.Parse(DateLayout, r.DateOfBirth)
		if err != nil {
			t.Fatalf("record %d: date of birth %q: %v", i, r.DateOfBirth, err)
		}
		age, err := strconv.Atoi(r.Age)
		if err != nil {
			t.Fatalf("record %d: age %q: %v", i, r.Age, err)
		}
		if age != AgeAt(dob, DefaultReference) {
			t.Errorf("record %d: age %d does not match date of birth %s", i, age, r.DateOfBirth)
		}
		if age < 18 || age > 85 {
			t.Errorf("record %d: implausible age %d", i, age)
		}
	}
}

func TestGenerate_EdgeCases(t *testing.T) {
	opts := DefaultOptions(50, 1)
	opts.EdgeCases = edgecases.Config{Percentage: 100, Types: []edgecases.EdgeCaseType{edgecases.MissingFields}}

	records, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i, r := range records {
		n := len(r.Missing())
		if n < 1 || n > 3 {
			t.Errorf("record %d: expected 1-3 missing fields, got %v", i, r.Missing())
		}
		if r.PatientID == "" || r.FullName == "" {
			t.Errorf("record %d: name and ID must be kept", i)
		}
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero count", DefaultOptions(0, 1)},
		{"latin share above 1", Options{Count: 1, LatinShare: 1.5}},
		{"edge cases without types", Options{Count: 1, EdgeCases: edgecases.Config{Percentage: 10}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Generate(tc.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAgeAt(t *testing.T) {
	ref := time.Date(2024, time.November, 12, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		dob  time.Time
		want int
	}{
		{time.Date(1966, time.March, 14, 0, 0, 0, 0, time.UTC), 58},
		{time.Date(1966, time.November, 12, 0, 0, 0, 0, time.UTC), 58},
		{time.Date(1966, time.November, 13, 0, 0, 0, 0, time.UTC), 57},
		{time.Date(1966, time.December, 1, 0, 0, 0, 0, time.UTC), 57},
	}
	for _, tc := range tests {
		if got := AgeAt(tc.dob, ref); got != tc.want {
			t.Errorf("AgeAt(%s) = %d, want %d", tc.dob.Format(DateLayout), got, tc.want)
		}
	}
}
