package handlers

import (
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"Cinelog/config"
	"Cinelog/models"
	"Cinelog/services"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 32 << 20

var movieFormTmpl *template.Template
var movieDeleteTmpl *template.Template

func init() {
	movieFormTmpl = mustTemplate("movieForm", "templates/pages/movie_form.html")
	movieDeleteTmpl = mustTemplate("movieDelete", "templates/pages/movie_confirm_delete.html")
}

type movieFormData struct {
	Username    string
	IsStaff     bool
	CurrentPage string
	Flashes     services.Flashes
	Form        services.MovieForm
	Errors      map[string]string
	Categories  []models.Category
	Movie       *models.Movie // set when editing
}

func readMovieForm(r *http.Request) services.MovieForm {
	return services.MovieForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Slug:        strings.TrimSpace(r.FormValue("slug")),
		Description: r.FormValue("description"),
		ReleaseDate: strings.TrimSpace(r.FormValue("release_date")),
		Actors:      strings.TrimSpace(r.FormValue("actors")),
		Rating:      strings.TrimSpace(r.FormValue("rating")),
		CategoryID:  r.FormValue("category"),
		TrailerURL:  strings.TrimSpace(r.FormValue("trailer_url")),
	}
}

// applyMovieForm copies validated form values onto the movie record.
// Call only after ValidateMovieForm returned no errors.
func applyMovieForm(movie *models.Movie, form services.MovieForm) {
	movie.Title = form.Title
	movie.Description = form.Description
	movie.ReleaseDate, _ = time.Parse("2006-01-02", form.ReleaseDate)
	movie.Actors = form.Actors
	rating, _ := strconv.ParseFloat(form.Rating, 64)
	movie.Rating = services.RoundRating(rating)
	movie.TrailerURL = form.TrailerURL
	movie.CategoryID = nil
	if form.CategoryID != "" {
		if id, err := strconv.ParseInt(form.CategoryID, 10, 64); err == nil {
			movie.CategoryID = &id
		}
	}
}

// savePosterUpload stores an uploaded poster when one was submitted.
// Returns the stored relative path, or "" when the field was left empty.
func savePosterUpload(r *http.Request, errs map[string]string) string {
	file, header, err := r.FormFile("poster")
	if err != nil {
		if err != http.ErrMissingFile {
			errs["poster"] = "Could not read the uploaded poster."
		}
		return ""
	}
	defer file.Close()

	cfg := config.Load()
	path, err := services.SaveUpload(cfg.UploadsPath, "posters", file, header)
	if err != nil {
		slog.Error("failed to save poster upload", "error", err)
		errs["poster"] = "Could not save the uploaded poster."
		return ""
	}
	return path
}

func renderMovieForm(w http.ResponseWriter, r *http.Request, user *models.User, data movieFormData) {
	categories, err := services.ListCategories()
	if err != nil {
		slog.Error("error listing categories", "error", err)
		categories = []models.Category{}
	}

	data.Username = user.Username
	data.IsStaff = user.IsStaff
	data.CurrentPage = "/movies/"
	data.Categories = categories

	if err := movieFormTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// MovieCreateHandler shows the submission form and creates the movie,
// assigning the acting user as creator.
func MovieCreateHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		renderMovieForm(w, r, user, movieFormData{Flashes: services.PopFlashes(w, r)})
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := readMovieForm(r)
	errs := services.ValidateMovieForm(form)

	if file, _, err := r.FormFile("poster"); err != nil {
		if err == http.ErrMissingFile {
			errs["poster"] = "Poster image is required."
		} else {
			errs["poster"] = "Could not read the uploaded poster."
		}
	} else {
		file.Close()
	}

	if len(errs) > 0 {
		renderMovieForm(w, r, user, movieFormData{Form: form, Errors: errs})
		return
	}

	// Nothing touches disk until the form has passed validation.
	posterPath := savePosterUpload(r, errs)
	if len(errs) > 0 {
		renderMovieForm(w, r, user, movieFormData{Form: form, Errors: errs})
		return
	}

	movie := &models.Movie{
		Slug:       form.Slug,
		PosterPath: posterPath,
		CreatedBy:  user.ID,
	}
	applyMovieForm(movie, form)

	if err := services.CreateMovie(movie); err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			errs["slug"] = "This slug is already in use."
			renderMovieForm(w, r, user, movieFormData{Form: form, Errors: errs})
			return
		}
		slog.Error("failed to create movie", "title", form.Title, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("movie created", "slug", movie.Slug, "user_id", user.ID)
	services.AddFlash(w, r, services.FlashSuccess, "Movie added successfully.")
	http.Redirect(w, r, "/movie/"+movie.Slug+"/", http.StatusSeeOther)
}

// loadOwnedMovie fetches the movie and enforces the ownership check,
// redirecting non-owners to the detail page with an error notice.
func loadOwnedMovie(w http.ResponseWriter, r *http.Request, user *models.User) *models.Movie {
	movie, err := services.GetMovieBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			slog.Error("error loading movie", "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
		return nil
	}

	if !services.CanModifyMovie(user, movie) {
		services.AddFlash(w, r, services.FlashError, "You don't have permission to modify this movie.")
		http.Redirect(w, r, "/movie/"+movie.Slug+"/", http.StatusSeeOther)
		return nil
	}

	return movie
}

func movieToForm(movie *models.Movie) services.MovieForm {
	form := services.MovieForm{
		Title:       movie.Title,
		Slug:        movie.Slug,
		Description: movie.Description,
		ReleaseDate: movie.ReleaseDate.Format("2006-01-02"),
		Actors:      movie.Actors,
		Rating:      strconv.FormatFloat(movie.Rating, 'f', 1, 64),
		TrailerURL:  movie.TrailerURL,
	}
	if movie.CategoryID != nil {
		form.CategoryID = strconv.FormatInt(*movie.CategoryID, 10)
	}
	return form
}

// MovieEditHandler updates a movie; only its creator may.
func MovieEditHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	movie := loadOwnedMovie(w, r, user)
	if movie == nil {
		return
	}

	if r.Method == http.MethodGet {
		renderMovieForm(w, r, user, movieFormData{
			Flashes: services.PopFlashes(w, r),
			Form:    movieToForm(movie),
			Movie:   movie,
		})
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := readMovieForm(r)
	form.Slug = movie.Slug // slug is stable across edits
	errs := services.ValidateMovieForm(form)

	if len(errs) > 0 {
		renderMovieForm(w, r, user, movieFormData{Form: form, Errors: errs, Movie: movie})
		return
	}

	// A replacement poster is only stored once the form is valid.
	posterPath := savePosterUpload(r, errs)
	if len(errs) > 0 {
		renderMovieForm(w, r, user, movieFormData{Form: form, Errors: errs, Movie: movie})
		return
	}

	applyMovieForm(movie, form)
	movie.PosterPath = posterPath // empty keeps the existing poster

	if err := services.UpdateMovie(movie); err != nil {
		slog.Error("failed to update movie", "slug", movie.Slug, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	services.AddFlash(w, r, services.FlashSuccess, "Movie updated successfully.")
	http.Redirect(w, r, "/movie/"+movie.Slug+"/", http.StatusSeeOther)
}

// MovieDeleteHandler confirms and deletes a movie; only its creator may.
// Comments and favorites cascade away with it.
func MovieDeleteHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	movie := loadOwnedMovie(w, r, user)
	if movie == nil {
		return
	}

	if r.Method == http.MethodGet {
		data := struct {
			Username    string
			IsStaff     bool
			CurrentPage string
			Flashes     services.Flashes
			Movie       *models.Movie
		}{
			Username:    user.Username,
			IsStaff:     user.IsStaff,
			CurrentPage: "/movies/",
			Flashes:     services.PopFlashes(w, r),
			Movie:       movie,
		}
		if err := movieDeleteTmpl.ExecuteTemplate(w, "base", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := services.DeleteMovie(movie.ID); err != nil {
		slog.Error("failed to delete movie", "slug", movie.Slug, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("movie deleted", "slug", movie.Slug, "user_id", user.ID)
	services.AddFlash(w, r, services.FlashSuccess, "Movie deleted successfully.")
	http.Redirect(w, r, "/movies/", http.StatusSeeOther)
}
