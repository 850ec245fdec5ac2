package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"Cinelog/models"
	"Cinelog/services"
)

func GetCurrentUser(r *http.Request) (*models.User, error) {
	session, err := services.GetSession(r)
	if err != nil {
		return nil, err
	}

	userID, ok := session.Values["user_id"]
	if !ok {
		return nil, nil
	}

	var userIDInt int64
	switch v := userID.(type) {
	case int64:
		userIDInt = v
	case int:
		userIDInt = int64(v)
	case string:
		var err error
		userIDInt, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	user, err := services.GetUserByID(userIDInt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SetupUserSession creates a session for a user after login/registration
func SetupUserSession(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := services.GetSession(r)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username

	if err := services.SaveSession(w, r, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func GetFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"truncate": func(s string, limit int) string {
			if utf8.RuneCountInString(s) <= limit {
				return s
			}
			// Cut on rune boundaries so multibyte text stays valid
			return strings.TrimSpace(string([]rune(s)[:limit])) + "..."
		},
		"hasPrefix": strings.HasPrefix,
	}
}

// mustTemplate parses a page template together with the base layout and
// navigation; handler init funcs call it so a broken template fails fast.
func mustTemplate(name, pageTemplate string) *template.Template {
	tmpl, err := template.New(name).Funcs(GetFuncMap()).ParseFiles(
		"templates/layouts/base.html",
		"templates/components/navigation.html",
		pageTemplate,
	)
	if err != nil {
		log.Fatalf("failed to parse template %s: %v", name, err)
	}
	return tmpl
}

// pageParam reads the ?page= query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
