package handlers

import (
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"Cinelog/models"
	"Cinelog/services"

	"github.com/go-chi/chi/v5"
)

var movieListTmpl *template.Template
var movieDetailTmpl *template.Template
var categoryMoviesTmpl *template.Template
var userMoviesTmpl *template.Template
var searchResultsTmpl *template.Template

func init() {
	movieListTmpl = mustTemplate("movieList", "templates/pages/movie_list.html")
	movieDetailTmpl = mustTemplate("movieDetail", "templates/pages/movie_detail.html")
	categoryMoviesTmpl = mustTemplate("categoryMovies", "templates/pages/movies_by_category.html")
	userMoviesTmpl = mustTemplate("userMovies", "templates/pages/user_movies.html")
	searchResultsTmpl = mustTemplate("searchResults", "templates/pages/search_results.html")
}

type movieListData struct {
	Username    string
	IsStaff     bool
	CurrentPage string
	Flashes     services.Flashes
	Movies      []models.Movie
	Page        services.Pagination
	Categories  []models.Category

	// Context of the filtered listings
	Category    *models.Category
	ViewedUser  string
	SearchQuery string
}

func MovieListHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	movies, page, err := services.ListMovies(pageParam(r))
	if err != nil {
		slog.Error("error listing movies", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	categories, err := services.ListCategories()
	if err != nil {
		slog.Error("error listing categories", "error", err)
		categories = []models.Category{}
	}

	data := movieListData{
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		CurrentPage: "/movies/",
		Flashes:     services.PopFlashes(w, r),
		Movies:      movies,
		Page:        page,
		Categories:  categories,
	}

	if err := movieListTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type movieDetailData struct {
	Username      string
	IsStaff       bool
	CurrentPage   string
	Flashes       services.Flashes
	Movie         *models.Movie
	Comments      []models.Comment
	IsFavorited   bool
	FavoriteCount int
	CanModify     bool
	CurrentUserID int64
}

func MovieDetailHandler(w http.ResponseWriter, r *http.Request) {
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

	comments, err := services.ListCommentsForMovie(movie.ID)
	if err != nil {
		slog.Error("error listing comments", "movie_id", movie.ID, "error", err)
		comments = []models.Comment{}
	}

	isFavorited, err := services.IsFavorited(user.ID, movie.ID)
	if err != nil {
		slog.Error("error checking favorite", "movie_id", movie.ID, "error", err)
	}

	favoriteCount, err := services.CountFavorites(movie.ID)
	if err != nil {
		slog.Error("error counting favorites", "movie_id", movie.ID, "error", err)
	}

	data := movieDetailData{
		Username:      user.Username,
		IsStaff:       user.IsStaff,
		CurrentPage:   "/movies/",
		Flashes:       services.PopFlashes(w, r),
		Movie:         movie,
		Comments:      comments,
		IsFavorited:   isFavorited,
		FavoriteCount: favoriteCount,
		CanModify:     services.CanModifyMovie(user, movie),
		CurrentUserID: user.ID,
	}

	if err := movieDetailTmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("error executing movie detail template", "error", err, "movie_id", movie.ID)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func MoviesByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	category, err := services.GetCategoryBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			slog.Error("error loading category", "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
		return
	}

	movies, page, err := services.ListMoviesByCategory(category.ID, pageParam(r))
	if err != nil {
		slog.Error("error listing movies by category", "category", category.Slug, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	data := movieListData{
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		CurrentPage: "/movies/",
		Flashes:     services.PopFlashes(w, r),
		Movies:      movies,
		Page:        page,
		Category:    category,
	}

	if err := categoryMoviesTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func UserMoviesHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	username := chi.URLParam(r, "username")
	viewedUser, err := services.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			slog.Error("error loading user", "username", username, "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
		return
	}

	movies, page, err := services.ListMoviesByUser(viewedUser.ID, pageParam(r))
	if err != nil {
		slog.Error("error listing movies by user", "username", username, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	data := movieListData{
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		CurrentPage: "/movies/",
		Flashes:     services.PopFlashes(w, r),
		Movies:      movies,
		Page:        page,
		ViewedUser:  viewedUser.Username,
	}

	if err := userMoviesTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func SearchHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	query := r.URL.Query().Get("q")

	var movies []models.Movie
	var page services.Pagination
	if query != "" {
		movies, page, err = services.SearchMovies(query, pageParam(r))
		if err != nil {
			slog.Error("error searching movies", "query", query, "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
	}

	data := movieListData{
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		CurrentPage: "/search/",
		Flashes:     services.PopFlashes(w, r),
		Movies:      movies,
		Page:        page,
		SearchQuery: query,
	}

	if err := searchResultsTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
