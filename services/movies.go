package services

import (
	"database/sql"
	"errors"
	"fmt"

	"Cinelog/database"
	"Cinelog/models"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrSlugTaken = errors.New("slug already in use")

// slugAttempts bounds collision disambiguation before giving up.
const slugAttempts = 50

const movieSelect = `
	SELECT m.id, m.title, m.slug, m.poster_path, m.description, m.release_date,
	       m.actors, m.rating, m.category_id, m.trailer_url, m.created_by,
	       m.created_at, m.updated_at, COALESCE(c.name, ''), COALESCE(c.slug, ''), u.username
	FROM movies m
	LEFT JOIN categories c ON c.id = m.category_id
	JOIN users u ON u.id = m.created_by`

func scanMovieRow(scan func(dest ...any) error) (models.Movie, error) {
	var m models.Movie
	var categoryID sql.NullInt64
	err := scan(
		&m.ID, &m.Title, &m.Slug, &m.PosterPath, &m.Description, &m.ReleaseDate,
		&m.Actors, &m.Rating, &categoryID, &m.TrailerURL, &m.CreatedBy,
		&m.CreatedAt, &m.UpdatedAt, &m.CategoryName, &m.CategorySlug, &m.CreatorName,
	)
	if err != nil {
		return m, err
	}
	if categoryID.Valid {
		m.CategoryID = &categoryID.Int64
	}
	return m, nil
}

func collectMovies(query string, args ...any) ([]models.Movie, error) {
	rows, err := database.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		m, err := scanMovieRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func GetMovieBySlug(slug string) (*models.Movie, error) {
	row := database.DB.QueryRow(movieSelect+" WHERE m.slug = $1", slug)
	m, err := scanMovieRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &m, nil
}

func GetMovieByID(id int64) (*models.Movie, error) {
	row := database.DB.QueryRow(movieSelect+" WHERE m.id = $1", id)
	m, err := scanMovieRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &m, nil
}

// CreateMovie inserts the movie, deriving a slug from the title when none
// was supplied. Derived slugs that collide get a numeric suffix; an
// explicitly supplied slug that collides is rejected with ErrSlugTaken.
func CreateMovie(movie *models.Movie) error {
	derived := movie.Slug == ""
	base := movie.Slug
	if derived {
		base = Slugify(movie.Title)
		if base == "" {
			base = "movie"
		}
		movie.Slug = base
	}

	for attempt := 2; attempt < slugAttempts; attempt++ {
		err := database.DB.QueryRow(
			`INSERT INTO movies (title, slug, poster_path, description, release_date,
			                     actors, rating, category_id, trailer_url, created_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id, created_at, updated_at`,
			movie.Title, movie.Slug, movie.PosterPath, movie.Description, movie.ReleaseDate,
			movie.Actors, movie.Rating, movie.CategoryID, movie.TrailerURL, movie.CreatedBy,
		).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "movies_slug_key" {
			if !derived {
				return ErrSlugTaken
			}
			movie.Slug = slugVariant(base, attempt)
			continue
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return fmt.Errorf("could not find a free slug for %q", base)
}

// UpdateMovie rewrites the editable fields. The slug is stable across
// edits; the poster is only replaced when a new path was stored.
func UpdateMovie(movie *models.Movie) error {
	_, err := database.DB.Exec(
		`UPDATE movies SET
			title = $1,
			description = $2,
			release_date = $3,
			actors = $4,
			rating = $5,
			category_id = $6,
			trailer_url = $7,
			poster_path = CASE WHEN $8 <> '' THEN $8 ELSE poster_path END,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9`,
		movie.Title, movie.Description, movie.ReleaseDate, movie.Actors,
		movie.Rating, movie.CategoryID, movie.TrailerURL, movie.PosterPath, movie.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	return nil
}

// DeleteMovie removes the movie; comments and favorites go with it via
// ON DELETE CASCADE.
func DeleteMovie(id int64) error {
	_, err := database.DB.Exec("DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return nil
}

func ListMovies(page int) ([]models.Movie, Pagination, error) {
	var total int
	if err := database.DB.QueryRow("SELECT COUNT(*) FROM movies").Scan(&total); err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count movies: %w", err)
	}
	p := NewPagination(page, total)

	movies, err := collectMovies(
		movieSelect+" ORDER BY m.created_at DESC, m.id DESC LIMIT $1 OFFSET $2",
		p.PageSize, p.Offset(),
	)
	if err != nil {
		return nil, p, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, p, nil
}

func ListMoviesByCategory(categoryID int64, page int) ([]models.Movie, Pagination, error) {
	var total int
	err := database.DB.QueryRow("SELECT COUNT(*) FROM movies WHERE category_id = $1", categoryID).Scan(&total)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count movies: %w", err)
	}
	p := NewPagination(page, total)

	movies, err := collectMovies(
		movieSelect+" WHERE m.category_id = $1 ORDER BY m.created_at DESC, m.id DESC LIMIT $2 OFFSET $3",
		categoryID, p.PageSize, p.Offset(),
	)
	if err != nil {
		return nil, p, fmt.Errorf("failed to list movies by category: %w", err)
	}
	return movies, p, nil
}

func ListMoviesByUser(userID int64, page int) ([]models.Movie, Pagination, error) {
	var total int
	err := database.DB.QueryRow("SELECT COUNT(*) FROM movies WHERE created_by = $1", userID).Scan(&total)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count movies: %w", err)
	}
	p := NewPagination(page, total)

	movies, err := collectMovies(
		movieSelect+" WHERE m.created_by = $1 ORDER BY m.created_at DESC, m.id DESC LIMIT $2 OFFSET $3",
		userID, p.PageSize, p.Offset(),
	)
	if err != nil {
		return nil, p, fmt.Errorf("failed to list movies by user: %w", err)
	}
	return movies, p, nil
}

// SearchMovies matches the query as a case-insensitive substring of title,
// description, actors or category name.
func SearchMovies(query string, page int) ([]models.Movie, Pagination, error) {
	pattern := likePattern(query)

	var total int
	err := database.DB.QueryRow(
		`SELECT COUNT(*)
		 FROM movies m
		 LEFT JOIN categories c ON c.id = m.category_id
		 WHERE m.title ILIKE $1 OR m.description ILIKE $1 OR m.actors ILIKE $1 OR c.name ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count search results: %w", err)
	}
	p := NewPagination(page, total)

	movies, err := collectMovies(
		movieSelect+` WHERE m.title ILIKE $1 OR m.description ILIKE $1 OR m.actors ILIKE $1 OR c.name ILIKE $1
		 ORDER BY m.created_at DESC, m.id DESC LIMIT $2 OFFSET $3`,
		pattern, p.PageSize, p.Offset(),
	)
	if err != nil {
		return nil, p, fmt.Errorf("failed to search movies: %w", err)
	}
	return movies, p, nil
}

// ListMoviesCreatedBy returns every movie the user created, for the
// dashboard (unpaginated).
func ListMoviesCreatedBy(userID int64) ([]models.Movie, error) {
	return collectMovies(
		movieSelect+" WHERE m.created_by = $1 ORDER BY m.created_at DESC, m.id DESC",
		userID,
	)
}
