package services

import (
	"database/sql"
	"errors"
	"fmt"

	"Cinelog/database"
	"Cinelog/models"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrCategoryExists = errors.New("category already exists")

func GetCategoryBySlug(slug string) (*models.Category, error) {
	var c models.Category
	err := database.DB.QueryRow(
		"SELECT id, name, slug FROM categories WHERE slug = $1",
		slug,
	).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &c, nil
}

// ListCategories returns all categories ordered by name, for nav links and
// the movie form's category select.
func ListCategories() ([]models.Category, error) {
	rows, err := database.DB.Query("SELECT id, name, slug FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a category, deriving the slug from the name.
func CreateCategory(name string) (*models.Category, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("category name produces an empty slug")
	}

	var c models.Category
	err := database.DB.QueryRow(
		"INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id, name, slug",
		name, slug,
	).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

// DeleteCategory removes the category. Linked movies keep existing with a
// null category via ON DELETE SET NULL.
func DeleteCategory(id int64) error {
	_, err := database.DB.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
