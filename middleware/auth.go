package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"Cinelog/services"
)

// redirectToLogin logs the reason and sends the visitor to the login page.
func redirectToLogin(w http.ResponseWriter, r *http.Request, reason string) {
	slog.Debug("auth redirect", "reason", reason, "path", r.URL.Path)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseUserID converts various session userID types to int64
func parseUserID(userID interface{}) (int64, error) {
	switch v := userID.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, strconv.ErrSyntax
	}
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := services.GetSession(r)
		if err != nil {
			redirectToLogin(w, r, "no session found")
			return
		}

		userID, ok := session.Values["user_id"]
		if !ok {
			redirectToLogin(w, r, "not authenticated")
			return
		}

		userIDInt, err := parseUserID(userID)
		if err != nil {
			redirectToLogin(w, r, "invalid user_id in session")
			return
		}

		// Verify the account still exists
		if _, err = services.GetUserByID(userIDInt); err != nil {
			redirectToLogin(w, r, "user not found in database")
			return
		}

		next.ServeHTTP(w, r)
	})
}
