package document

import "testing"

func TestParseFilenameStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  FilenameStrategy
	}{
		{"full", FullID},
		{"FULL", FullID},
		{"", FullID},
		{"last4", LastFour},
		{"Last-Four", LastFour},
	}
	for _, tc := range tests {
		got, err := ParseFilenameStrategy(tc.input)
		if err != nil {
			t.Errorf("ParseFilenameStrategy(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseFilenameStrategy(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	if _, err := ParseFilenameStrategy("first4"); err == nil {
		t.Error("expected error for invalid strategy")
	}
}

func TestFilenameStrategy_RoundTrip(t *testing.T) {
	for _, s := range []FilenameStrategy{FullID, LastFour} {
		parsed, err := ParseFilenameStrategy(s.String())
		if err != nil || parsed != s {
			t.Errorf("round trip of %v gave %v, %v", s, parsed, err)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		strategy FilenameStrategy
		id       string
		want     string
	}{
		{FullID, "1234567890", "скрининг_1234567890.docx"},
		{LastFour, "1234567890", "скрининг_7890.docx"},
		{LastFour, "123", "скрининг_123.docx"},
		{LastFour, "АБВГДЕ", "скрининг_ВГДЕ.docx"},
	}
	for _, tc := range tests {
		if got := tc.strategy.Filename(DefaultPrefix, tc.id); got != tc.want {
			t.Errorf("%v.Filename(%q) = %q, want %q", tc.strategy, tc.id, got, tc.want)
		}
	}
}
