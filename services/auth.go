package services

import (
	"database/sql"
	"errors"
	"fmt"

	"Cinelog/database"
	"Cinelog/models"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

const userColumns = "id, username, first_name, last_name, email, password_hash, is_staff, created_at, updated_at"

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.IsStaff,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (*models.User, error) {
	user, err := scanUser(database.DB.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE username = $1",
		username,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invalid credentials")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return user, nil
}

// RegisterUser creates the user row and its profile row in a single
// transaction, so a user can never exist without a profile.
func RegisterUser(username, firstName, lastName, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var user models.User
	err = tx.QueryRow(
		`INSERT INTO users (username, first_name, last_name, email, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		username, firstName, lastName, email, string(hashedPassword),
	).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.IsStaff,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return nil, ErrUsernameTaken
			case "users_email_key":
				return nil, ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if _, err = tx.Exec("INSERT INTO profiles (user_id) VALUES ($1)", user.ID); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return &user, nil
}

func GetUserByID(userID int64) (*models.User, error) {
	user, err := scanUser(database.DB.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = $1",
		userID,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

func GetUserByUsername(username string) (*models.User, error) {
	user, err := scanUser(database.DB.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE username = $1",
		username,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

// SaveUser updates the mutable user fields and re-saves the profile row,
// creating it if it went missing.
func SaveUser(user *models.User) error {
	tx, err := database.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE users SET first_name = $1, last_name = $2, email = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		user.FirstName, user.LastName, user.Email, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO profiles (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET updated_at = CURRENT_TIMESTAMP`,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return tx.Commit()
}

func GetProfile(userID int64) (*models.Profile, error) {
	var p models.Profile
	err := database.DB.QueryRow(
		"SELECT id, user_id, bio, avatar_path, created_at, updated_at FROM profiles WHERE user_id = $1",
		userID,
	).Scan(&p.ID, &p.UserID, &p.Bio, &p.AvatarPath, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &p, nil
}

// UpdateProfile upserts bio and avatar so a missing profile row never fails
// the edit.
func UpdateProfile(userID int64, bio, avatarPath string) error {
	_, err := database.DB.Exec(
		`INSERT INTO profiles (user_id, bio, avatar_path)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			avatar_path = CASE WHEN EXCLUDED.avatar_path <> '' THEN EXCLUDED.avatar_path ELSE profiles.avatar_path END,
			updated_at = CURRENT_TIMESTAMP`,
		userID, bio, avatarPath,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
