package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"Cinelog/models"
	"Cinelog/services"
)

var dashboardTmpl *template.Template

func init() {
	dashboardTmpl = mustTemplate("dashboard", "templates/pages/dashboard.html")
}

type dashboardData struct {
	Username       string
	IsStaff        bool
	CurrentPage    string
	Flashes        services.Flashes
	MyMovies       []models.Movie
	Favorites      []models.Movie
	RecentComments []models.Comment
}

// DashboardHandler shows the acting user's movies, favorites and their 10
// most recent comments.
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	myMovies, err := services.ListMoviesCreatedBy(user.ID)
	if err != nil {
		slog.Error("error listing own movies", "user_id", user.ID, "error", err)
		myMovies = []models.Movie{}
	}

	favorites, err := services.ListFavoriteMovies(user.ID)
	if err != nil {
		slog.Error("error listing favorites", "user_id", user.ID, "error", err)
		favorites = []models.Movie{}
	}

	recentComments, err := services.RecentCommentsByUser(user.ID, 10)
	if err != nil {
		slog.Error("error listing recent comments", "user_id", user.ID, "error", err)
		recentComments = []models.Comment{}
	}

	data := dashboardData{
		Username:       user.Username,
		IsStaff:        user.IsStaff,
		CurrentPage:    "/dashboard/",
		Flashes:        services.PopFlashes(w, r),
		MyMovies:       myMovies,
		Favorites:      favorites,
		RecentComments: recentComments,
	}

	if err := dashboardTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
