package services

import (
	"net/http"

	"Cinelog/config"

	"github.com/gorilla/sessions"
)

var store *sessions.CookieStore

func InitSessionStore(cfg *config.Config) {
	store = sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func GetSession(r *http.Request) (*sessions.Session, error) {
	return store.Get(r, "cinelog-session")
}

func SaveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) error {
	return session.Save(r, w)
}

// Flash levels double as session flash keys.
const (
	FlashSuccess = "flash_success"
	FlashError   = "flash_error"
	FlashInfo    = "flash_info"
)

// AddFlash queues a one-time notice for the next rendered page.
func AddFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	session, err := GetSession(r)
	if err != nil {
		return
	}
	session.AddFlash(message, level)
	SaveSession(w, r, session)
}

type Flashes struct {
	Success []string
	Error   []string
	Info    []string
}

// PopFlashes drains all queued notices and persists the emptied session.
func PopFlashes(w http.ResponseWriter, r *http.Request) Flashes {
	var f Flashes
	session, err := GetSession(r)
	if err != nil {
		return f
	}
	for _, v := range session.Flashes(FlashSuccess) {
		if s, ok := v.(string); ok {
			f.Success = append(f.Success, s)
		}
	}
	for _, v := range session.Flashes(FlashError) {
		if s, ok := v.(string); ok {
			f.Error = append(f.Error, s)
		}
	}
	for _, v := range session.Flashes(FlashInfo) {
		if s, ok := v.(string); ok {
			f.Info = append(f.Info, s)
		}
	}
	SaveSession(w, r, session)
	return f
}
