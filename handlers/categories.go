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

var categoriesTmpl *template.Template

func init() {
	categoriesTmpl = mustTemplate("categories", "templates/pages/categories.html")
}

// requireStaff enforces the staff check for category management,
// redirecting everyone else to the movie list with a notice.
func requireStaff(w http.ResponseWriter, r *http.Request) *models.User {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	if !services.CanManageCategories(user) {
		services.AddFlash(w, r, services.FlashError, "Only staff can manage categories.")
		http.Redirect(w, r, "/movies/", http.StatusSeeOther)
		return nil
	}
	return user
}

type categoriesData struct {
	Username    string
	IsStaff     bool
	CurrentPage string
	Flashes     services.Flashes
	Categories  []models.Category
}

func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	user := requireStaff(w, r)
	if user == nil {
		return
	}

	categories, err := services.ListCategories()
	if err != nil {
		slog.Error("error listing categories", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	data := categoriesData{
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		CurrentPage: "/categories/",
		Flashes:     services.PopFlashes(w, r),
		Categories:  categories,
	}

	if err := categoriesTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func CategoryCreateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireStaff(w, r)
	if user == nil {
		return
	}

	name := r.FormValue("name")
	if name == "" {
		services.AddFlash(w, r, services.FlashError, "Category name is required.")
		http.Redirect(w, r, "/categories/", http.StatusSeeOther)
		return
	}

	category, err := services.CreateCategory(name)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			services.AddFlash(w, r, services.FlashError, "A category with that name already exists.")
		} else {
			slog.Error("failed to create category", "name", name, "error", err)
			services.AddFlash(w, r, services.FlashError, "Could not create the category.")
		}
		http.Redirect(w, r, "/categories/", http.StatusSeeOther)
		return
	}

	slog.Info("category created", "slug", category.Slug, "user_id", user.ID)
	services.AddFlash(w, r, services.FlashSuccess, "Category created.")
	http.Redirect(w, r, "/categories/", http.StatusSeeOther)
}

// CategoryDeleteHandler removes a category; movies linked to it survive
// with their category cleared.
func CategoryDeleteHandler(w http.ResponseWriter, r *http.Request) {
	user := requireStaff(w, r)
	if user == nil {
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

	if err := services.DeleteCategory(category.ID); err != nil {
		slog.Error("failed to delete category", "slug", category.Slug, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("category deleted", "slug", category.Slug, "user_id", user.ID)
	services.AddFlash(w, r, services.FlashSuccess, "Category deleted.")
	http.Redirect(w, r, "/categories/", http.StatusSeeOther)
}
