package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"Cinelog/config"
	"Cinelog/database"
	"Cinelog/models"
)

// openTestDB connects to the database named by DATABASE_URL and prepares
// the schema. Tests that need a live database skip when none is set.
func openTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping database test")
	}

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.RunMigrations(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
}

// createFavoriteFixtures registers a fresh user with one movie and removes
// both (cascading favorites) when the test ends.
func createFavoriteFixtures(t *testing.T) (*models.User, *models.Movie) {
	t.Helper()
	tag := fmt.Sprintf("%d", time.Now().UnixNano())

	user, err := RegisterUser("fav"+tag, "Fav", "Tester", "fav"+tag+"@test.local", "password123")
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	t.Cleanup(func() {
		database.DB.Exec("DELETE FROM users WHERE id = $1", user.ID)
	})

	movie := &models.Movie{
		Title:       "Toggle Test " + tag,
		Description: "fixture for favorite toggling",
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Actors:      "Nobody",
		Rating:      7.0,
		CreatedBy:   user.ID,
	}
	if err := CreateMovie(movie); err != nil {
		t.Fatalf("failed to create movie: %v", err)
	}
	return user, movie
}

func TestToggleFavoriteTwiceRestoresState(t *testing.T) {
	openTestDB(t)
	user, movie := createFavoriteFixtures(t)

	added, err := ToggleFavorite(user.ID, movie.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !added {
		t.Fatal("first toggle should add the favorite")
	}

	fav, err := IsFavorited(user.ID, movie.ID)
	if err != nil {
		t.Fatalf("IsFavorited failed: %v", err)
	}
	if !fav {
		t.Fatal("favorite missing after first toggle")
	}

	added, err = ToggleFavorite(user.ID, movie.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if added {
		t.Fatal("second toggle should remove the favorite")
	}

	count, err := CountFavorites(movie.ID)
	if err != nil {
		t.Fatalf("CountFavorites failed: %v", err)
	}
	if count != 0 {
		t.Errorf("favorite count after double toggle = %d, want 0", count)
	}

	fav, err = IsFavorited(user.ID, movie.ID)
	if err != nil {
		t.Fatalf("IsFavorited failed: %v", err)
	}
	if fav {
		t.Error("favorite still present after double toggle")
	}
}

func TestToggleFavoriteTreatsExistingPairAsRemoval(t *testing.T) {
	openTestDB(t)
	user, movie := createFavoriteFixtures(t)

	// Insert the pair directly, as if a concurrent toggle won the race.
	_, err := database.DB.Exec(
		"INSERT INTO favorites (user_id, movie_id) VALUES ($1, $2)",
		user.ID, movie.ID,
	)
	if err != nil {
		t.Fatalf("failed to insert favorite: %v", err)
	}

	added, err := ToggleFavorite(user.ID, movie.ID)
	if err != nil {
		t.Fatalf("toggle over existing pair failed: %v", err)
	}
	if added {
		t.Fatal("toggle over an existing pair should report removal, not addition")
	}

	count, err := CountFavorites(movie.ID)
	if err != nil {
		t.Fatalf("CountFavorites failed: %v", err)
	}
	if count != 0 {
		t.Errorf("favorite count = %d, want 0; duplicate rows must never appear", count)
	}
}
