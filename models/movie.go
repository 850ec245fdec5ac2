package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Movie struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	PosterPath  string    `db:"poster_path"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	Actors      string    `db:"actors"` // comma-separated list of main actors
	Rating      float64   `db:"rating"` // 0.0 - 10.0
	CategoryID  *int64    `db:"category_id"`
	TrailerURL  string    `db:"trailer_url"`
	CreatedBy   int64     `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// Joined for display
	CategoryName string `db:"category_name"`
	CategorySlug string `db:"category_slug"`
	CreatorName  string `db:"creator_name"`
}

// ShortActors truncates the actors list for list views. Counts characters,
// not bytes, so multibyte names never get cut mid-rune.
func (m *Movie) ShortActors(limit int) string {
	if utf8.RuneCountInString(m.Actors) <= limit {
		return m.Actors
	}
	return strings.TrimSpace(string([]rune(m.Actors)[:limit])) + "..."
}
