package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Cinelog/config"
)

func TestFlashRoundTrip(t *testing.T) {
	InitSessionStore(&config.Config{SessionSecret: "test-secret", Environment: "development"})

	r := httptest.NewRequest(http.MethodGet, "/movies/", nil)
	w := httptest.NewRecorder()

	AddFlash(w, r, FlashSuccess, "Movie added.")
	AddFlash(w, r, FlashError, "Something went wrong.")
	AddFlash(w, r, FlashInfo, "Added to favorites.")

	f := PopFlashes(w, r)
	if len(f.Success) != 1 || f.Success[0] != "Movie added." {
		t.Errorf("success flashes = %v", f.Success)
	}
	if len(f.Error) != 1 || f.Error[0] != "Something went wrong." {
		t.Errorf("error flashes = %v", f.Error)
	}
	if len(f.Info) != 1 || f.Info[0] != "Added to favorites." {
		t.Errorf("info flashes = %v", f.Info)
	}

	// Popping drains the queue.
	f = PopFlashes(w, r)
	if len(f.Success)+len(f.Error)+len(f.Info) != 0 {
		t.Errorf("expected empty flashes after pop, got %+v", f)
	}
}

func TestSessionSecureInProduction(t *testing.T) {
	InitSessionStore(&config.Config{SessionSecret: "test-secret", Environment: "production"})
	if !store.Options.Secure {
		t.Error("production sessions should set the Secure flag")
	}

	InitSessionStore(&config.Config{SessionSecret: "test-secret", Environment: "development"})
	if store.Options.Secure {
		t.Error("development sessions should not set the Secure flag")
	}
	if !store.Options.HttpOnly {
		t.Error("sessions should always be HttpOnly")
	}
}
