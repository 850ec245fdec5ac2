package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"Cinelog/services"

	"github.com/go-chi/chi/v5"
)

// AddCommentHandler attaches a comment to the movie and sends the user
// back to the detail page either way.
func AddCommentHandler(w http.ResponseWriter, r *http.Request) {
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

	content := r.FormValue("content")
	if msg := services.ValidateComment(content); msg != "" {
		services.AddFlash(w, r, services.FlashError, msg)
		http.Redirect(w, r, "/movie/"+movie.Slug+"/", http.StatusSeeOther)
		return
	}

	if _, err := services.AddComment(movie.ID, user.ID, content); err != nil {
		slog.Error("failed to add comment", "movie_id", movie.ID, "error", err)
		services.AddFlash(w, r, services.FlashError, "Error with your comment.")
		http.Redirect(w, r, "/movie/"+movie.Slug+"/", http.StatusSeeOther)
		return
	}

	services.AddFlash(w, r, services.FlashSuccess, "Comment posted.")
	http.Redirect(w, r, "/movie/"+movie.Slug+"/", http.StatusSeeOther)
}

// DeleteCommentHandler removes a comment when the actor is its author or
// staff; anyone else is bounced back with a permission notice.
func DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	comment, err := services.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			slog.Error("error loading comment", "comment_id", id, "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
		return
	}

	if !services.CanDeleteComment(user, comment) {
		services.AddFlash(w, r, services.FlashError, "You don't have permission to delete this comment.")
		http.Redirect(w, r, "/movie/"+comment.MovieSlug+"/", http.StatusSeeOther)
		return
	}

	if err := services.DeleteComment(comment.ID); err != nil {
		slog.Error("failed to delete comment", "comment_id", comment.ID, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	services.AddFlash(w, r, services.FlashSuccess, "Comment deleted.")
	http.Redirect(w, r, "/movie/"+comment.MovieSlug+"/", http.StatusSeeOther)
}
