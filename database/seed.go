package database

import (
	"fmt"

	"Cinelog/config"

	"golang.org/x/crypto/bcrypt"
)

// SeedStaffUser creates the initial staff account from ADMIN_* env vars.
// Skipped when no password is configured or the account already exists.
func SeedStaffUser(cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM users WHERE username = $1", cfg.AdminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for existing staff user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var userID int64
	err = DB.QueryRow(
		"INSERT INTO users (username, email, password_hash, is_staff) VALUES ($1, $2, $3, TRUE) RETURNING id",
		cfg.AdminUsername, cfg.AdminEmail, string(hashedPassword),
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("failed to seed staff user: %w", err)
	}

	// Every user row gets a profile row, the staff account included.
	_, err = DB.Exec(
		"INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING",
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to seed staff profile: %w", err)
	}

	return nil
}

// SeedDefaultCategories ensures a starter set of categories exists.
func SeedDefaultCategories() error {
	defaultCategories := []struct {
		name string
		slug string
	}{
		{"Action", "action"},
		{"Comedy", "comedy"},
		{"Drama", "drama"},
		{"Horror", "horror"},
		{"Sci-Fi", "sci-fi"},
		{"Thriller", "thriller"},
	}

	for _, c := range defaultCategories {
		_, err := DB.Exec(
			`INSERT INTO categories (name, slug)
			 VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`,
			c.name, c.slug,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.name, err)
		}
	}

	return nil
}
