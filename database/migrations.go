package database

import (
	"fmt"
)

func RunMigrations() error {
	usersSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(150) UNIQUE NOT NULL,
		first_name VARCHAR(30) NOT NULL DEFAULT '',
		last_name VARCHAR(30) NOT NULL DEFAULT '',
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_staff BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS profiles (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		bio TEXT NOT NULL DEFAULT '',
		avatar_path VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := DB.Exec(usersSQL); err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	catalogSQL := `
	CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		slug VARCHAR(120) UNIQUE NOT NULL
	);

	CREATE TABLE IF NOT EXISTS movies (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(280) UNIQUE NOT NULL,
		poster_path VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		release_date DATE NOT NULL,
		actors TEXT NOT NULL DEFAULT '',
		rating NUMERIC(3,1) NOT NULL CHECK (rating >= 0.0 AND rating <= 10.0),
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
		trailer_url VARCHAR(500) NOT NULL DEFAULT '',
		created_by BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_movies_title_slug ON movies (title, slug);
	CREATE INDEX IF NOT EXISTS idx_movies_category ON movies (category_id);
	CREATE INDEX IF NOT EXISTS idx_movies_created_by ON movies (created_by);
	`
	if _, err := DB.Exec(catalogSQL); err != nil {
		return fmt.Errorf("failed to run catalog migration: %w", err)
	}

	activitySQL := `
	CREATE TABLE IF NOT EXISTS comments (
		id BIGSERIAL PRIMARY KEY,
		movie_id BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		content VARCHAR(2000) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_comments_movie ON comments (movie_id);
	CREATE INDEX IF NOT EXISTS idx_comments_user ON comments (user_id);

	CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		movie_id BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_id, movie_id)
	);
	`
	if _, err := DB.Exec(activitySQL); err != nil {
		return fmt.Errorf("failed to run activity migration: %w", err)
	}

	return nil
}
