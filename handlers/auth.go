package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"Cinelog/services"
)

var loginTmpl *template.Template
var registerTmpl *template.Template

func init() {
	loginTmpl = mustTemplate("login", "templates/pages/login.html")
	registerTmpl = mustTemplate("register", "templates/pages/register.html")
}

type loginData struct {
	Username     string // always empty; the login page renders logged out
	IsStaff      bool
	CurrentPage  string
	Flashes      services.Flashes
	Error        string
	FormUsername string
}

// LoginHandler serves the login form and processes credentials. Logged-in
// visitors are sent straight to the movie list.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if user, _ := GetCurrentUser(r); user != nil {
		http.Redirect(w, r, "/movies/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		data := loginData{Flashes: services.PopFlashes(w, r)}
		if err := loginTmpl.ExecuteTemplate(w, "base", data); err != nil {
			slog.Error("error rendering login template", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		renderLoginError(w, username, "Username and password are required.")
		return
	}

	user, err := services.AuthenticateUser(username, password)
	if err != nil {
		slog.Warn("login failed", "username", username)
		renderLoginError(w, username, "Invalid username or password.")
		return
	}

	if err := SetupUserSession(w, r, user); err != nil {
		slog.Error("failed to setup session", "username", username, "error", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	slog.Info("user logged in", "username", username, "user_id", user.ID)
	http.Redirect(w, r, "/movies/", http.StatusSeeOther)
}

func renderLoginError(w http.ResponseWriter, username, msg string) {
	data := loginData{Error: msg, FormUsername: username}
	if err := loginTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type registerData struct {
	Username    string // always empty; the register page renders logged out
	IsStaff     bool
	CurrentPage string
	Flashes     services.Flashes
	Errors      map[string]string
	Form        services.RegistrationForm
}

// RegisterHandler creates an account and logs the new user in immediately.
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if user, _ := GetCurrentUser(r); user != nil {
		http.Redirect(w, r, "/movies/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		data := registerData{Flashes: services.PopFlashes(w, r)}
		if err := registerTmpl.ExecuteTemplate(w, "base", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	form := services.RegistrationForm{
		Username:  r.FormValue("username"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Password1: r.FormValue("password1"),
		Password2: r.FormValue("password2"),
	}

	errs := services.ValidateRegistration(form)
	if len(errs) > 0 {
		renderRegisterErrors(w, form, errs)
		return
	}

	user, err := services.RegisterUser(form.Username, form.FirstName, form.LastName, form.Email, form.Password1)
	if err != nil {
		switch err {
		case services.ErrUsernameTaken:
			errs["username"] = "This username is already taken."
		case services.ErrEmailTaken:
			errs["email"] = "This email is already registered."
		default:
			slog.Error("registration failed", "username", form.Username, "error", err)
			http.Error(w, "Registration failed", http.StatusInternalServerError)
			return
		}
		renderRegisterErrors(w, form, errs)
		return
	}

	slog.Info("user registered", "username", user.Username, "user_id", user.ID)

	// Automatically log in after registration
	if err := SetupUserSession(w, r, user); err != nil {
		slog.Error("failed to setup session", "username", user.Username, "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	services.AddFlash(w, r, services.FlashSuccess,
		fmt.Sprintf("Welcome %s, your account has been created!", user.Username))
	http.Redirect(w, r, "/movies/", http.StatusSeeOther)
}

func renderRegisterErrors(w http.ResponseWriter, form services.RegistrationForm, errs map[string]string) {
	data := registerData{Errors: errs, Form: form}
	if err := registerTmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := services.GetSession(r)
	if err == nil {
		session.Values = make(map[interface{}]interface{})
		session.Options.MaxAge = -1
		services.SaveSession(w, r, session)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
