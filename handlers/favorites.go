package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"Cinelog/services"

	"github.com/go-chi/chi/v5"
)

// ToggleFavoriteHandler flips the acting user's favorite on the movie.
func ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	movie, err := services.GetMovieBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			slog.Error("error loading movie", "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
		return
	}

	added, err := services.ToggleFavorite(user.ID, movie.ID)
	if err != nil {
		slog.Error("failed to toggle favorite", "movie_id", movie.ID, "user_id", user.ID, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	if added {
		services.AddFlash(w, r, services.FlashSuccess, "Added to favorites.")
	} else {
		services.AddFlash(w, r, services.FlashInfo, "Removed from favorites.")
	}
	http.Redirect(w, r, "/movie/"+movie.Slug+"/", http.StatusSeeOther)
}
