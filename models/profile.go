package models

import "time"

type Profile struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Bio        string    `db:"bio"`
	AvatarPath string    `db:"avatar_path"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
