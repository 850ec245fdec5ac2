package handlers

import (
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"Cinelog/config"
	"Cinelog/models"
	"Cinelog/services"
)

var profileFormTmpl *template.Template

func init() {
	profileFormTmpl = mustTemplate("profileForm", "templates/pages/profile_form.html")
}

type profileFormData struct {
	Username    string
	IsStaff     bool
	CurrentPage string
	Flashes     services.Flashes
	Profile     *models.Profile
	Error       string
}

// ProfileEditHandler lets the acting user update their bio and avatar.
func ProfileEditHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	profile, err := services.GetProfile(user.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("error loading profile", "user_id", user.ID, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		// Tolerate a missing row; the save below recreates it.
		profile = &models.Profile{UserID: user.ID}
	}

	if r.Method == http.MethodGet {
		data := profileFormData{
			Username:    user.Username,
			IsStaff:     user.IsStaff,
			CurrentPage: "/dashboard/",
			Flashes:     services.PopFlashes(w, r),
			Profile:     profile,
		}
		if err := profileFormTmpl.ExecuteTemplate(w, "base", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	bio := r.FormValue("bio")

	avatarPath := ""
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		cfg := config.Load()
		avatarPath, err = services.SaveUpload(cfg.UploadsPath, "avatars", file, header)
		if err != nil {
			slog.Error("failed to save avatar upload", "user_id", user.ID, "error", err)
			data := profileFormData{
				Username:    user.Username,
				IsStaff:     user.IsStaff,
				CurrentPage: "/dashboard/",
				Profile:     profile,
				Error:       "Could not save the uploaded avatar.",
			}
			if err := profileFormTmpl.ExecuteTemplate(w, "base", data); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
	}

	if err := services.UpdateProfile(user.ID, bio, avatarPath); err != nil {
		slog.Error("failed to update profile", "user_id", user.ID, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	services.AddFlash(w, r, services.FlashSuccess, "Profile updated.")
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}
