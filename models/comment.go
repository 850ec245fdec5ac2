package models

import "time"

type Comment struct {
	ID        int64     `db:"id"`
	MovieID   int64     `db:"movie_id"`
	UserID    int64     `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Joined for display
	Username   string `db:"username"`
	MovieTitle string `db:"movie_title"`
	MovieSlug  string `db:"movie_slug"`
}
