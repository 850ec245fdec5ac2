package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Cinelog/config"
	"Cinelog/services"
)

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	services.InitSessionStore(&config.Config{SessionSecret: "test-secret", Environment: "development"})

	called := false
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if called {
		t.Error("protected handler ran for an anonymous request")
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect location = %q, want /", loc)
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    int64
		wantErr bool
	}{
		{int64(42), 42, false},
		{7, 7, false},
		{"19", 19, false},
		{"abc", 0, true},
		{3.14, 0, true},
		{nil, 0, true},
	}

	for _, tt := range tests {
		got, err := parseUserID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseUserID(%v): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseUserID(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
