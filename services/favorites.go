package services

import (
	"fmt"

	"Cinelog/database"
	"Cinelog/models"
)

// ToggleFavorite flips the (user, movie) favorite and reports whether it
// was added. The insert races through the unique constraint: when a
// concurrent toggle already created the pair, ON CONFLICT DO NOTHING makes
// this call see "already favorited" and remove it instead of duplicating.
func ToggleFavorite(userID, movieID int64) (added bool, err error) {
	res, err := database.DB.Exec(
		`INSERT INTO favorites (user_id, movie_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, movie_id) DO NOTHING`,
		userID, movieID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return true, nil
	}

	_, err = database.DB.Exec(
		"DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2",
		userID, movieID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return false, nil
}

func IsFavorited(userID, movieID int64) (bool, error) {
	var exists bool
	err := database.DB.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND movie_id = $2)",
		userID, movieID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

func CountFavorites(movieID int64) (int, error) {
	var count int
	err := database.DB.QueryRow(
		"SELECT COUNT(*) FROM favorites WHERE movie_id = $1",
		movieID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// ListFavoriteMovies returns the movies the user favorited, most recently
// favorited first, for the dashboard.
func ListFavoriteMovies(userID int64) ([]models.Movie, error) {
	return collectMovies(
		movieSelect+`
		 JOIN favorites f ON f.movie_id = m.id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC, f.id DESC`,
		userID,
	)
}
