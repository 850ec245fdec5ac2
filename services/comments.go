package services

import (
	"database/sql"
	"fmt"

	"Cinelog/database"
	"Cinelog/models"
)

func AddComment(movieID, userID int64, content string) (*models.Comment, error) {
	var c models.Comment
	err := database.DB.QueryRow(
		`INSERT INTO comments (movie_id, user_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, movie_id, user_id, content, created_at, updated_at`,
		movieID, userID, content,
	).Scan(&c.ID, &c.MovieID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &c, nil
}

func GetCommentByID(id int64) (*models.Comment, error) {
	var c models.Comment
	err := database.DB.QueryRow(
		`SELECT cm.id, cm.movie_id, cm.user_id, cm.content, cm.created_at, cm.updated_at,
		        u.username, m.title, m.slug
		 FROM comments cm
		 JOIN users u ON u.id = cm.user_id
		 JOIN movies m ON m.id = cm.movie_id
		 WHERE cm.id = $1`,
		id,
	).Scan(&c.ID, &c.MovieID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
		&c.Username, &c.MovieTitle, &c.MovieSlug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &c, nil
}

func DeleteComment(id int64) error {
	_, err := database.DB.Exec("DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// ListCommentsForMovie returns a movie's comments, newest first.
func ListCommentsForMovie(movieID int64) ([]models.Comment, error) {
	rows, err := database.DB.Query(
		`SELECT cm.id, cm.movie_id, cm.user_id, cm.content, cm.created_at, cm.updated_at, u.username
		 FROM comments cm
		 JOIN users u ON u.id = cm.user_id
		 WHERE cm.movie_id = $1
		 ORDER BY cm.created_at DESC, cm.id DESC`,
		movieID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.MovieID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt, &c.Username)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// RecentCommentsByUser returns the user's latest comments with movie info,
// for the dashboard.
func RecentCommentsByUser(userID int64, limit int) ([]models.Comment, error) {
	rows, err := database.DB.Query(
		`SELECT cm.id, cm.movie_id, cm.user_id, cm.content, cm.created_at, cm.updated_at,
		        u.username, m.title, m.slug
		 FROM comments cm
		 JOIN users u ON u.id = cm.user_id
		 JOIN movies m ON m.id = cm.movie_id
		 WHERE cm.user_id = $1
		 ORDER BY cm.created_at DESC, cm.id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.MovieID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&c.Username, &c.MovieTitle, &c.MovieSlug)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
