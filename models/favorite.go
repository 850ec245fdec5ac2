package models

import "time"

type Favorite struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	CreatedAt time.Time `db:"created_at"`
}
