package services

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"The Dark Knight", "the-dark-knight"},
		{"Inception", "inception"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Blade Runner 2049", "blade-runner-2049"},
		{"What's Up, Doc?", "whats-up-doc"},
		{"AT&T: The Movie", "att-the-movie"},
		{"Amélie", "amlie"},
		{"UPPER lower", "upper-lower"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 100)
	got := Slugify(long)
	if len(got) > MaxSlugLength {
		t.Fatalf("Slugify produced %d chars, max is %d", len(got), MaxSlugLength)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated slug ends with hyphen: %q", got)
	}
}

func TestSlugVariant(t *testing.T) {
	if got := slugVariant("inception", 2); got != "inception-2" {
		t.Errorf("slugVariant = %q, want inception-2", got)
	}

	base := strings.Repeat("x", MaxSlugLength)
	got := slugVariant(base, 12)
	if len(got) > MaxSlugLength {
		t.Fatalf("slugVariant produced %d chars, max is %d", len(got), MaxSlugLength)
	}
	if !strings.HasSuffix(got, "-12") {
		t.Errorf("slugVariant = %q, want -12 suffix", got)
	}
}
