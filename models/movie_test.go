package models

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestShortActors(t *testing.T) {
	m := &Movie{Actors: "Leonardo DiCaprio, Joseph Gordon-Levitt"}
	if got := m.ShortActors(100); got != m.Actors {
		t.Errorf("short list should pass through, got %q", got)
	}
	if got := m.ShortActors(8); got != "Leonardo..." {
		t.Errorf("ShortActors(8) = %q, want Leonardo...", got)
	}
}

func TestShortActorsMultibyte(t *testing.T) {
	m := &Movie{Actors: strings.Repeat("Чулпан Хаматова, ", 10)}
	got := m.ShortActors(40)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) > 40+3 {
		t.Errorf("truncation too long: %q", got)
	}
}
