package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"Cinelog/config"
	"Cinelog/database"
	"Cinelog/handlers"
	"Cinelog/middleware"
	"Cinelog/services"

	"github.com/go-chi/chi/v5"
)

func main() {
	// Load configuration
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize session store
	services.InitSessionStore(cfg)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed staff user and starter categories
	if err := database.SeedStaffUser(cfg); err != nil {
		log.Fatal("Failed to seed staff user:", err)
	}
	if err := database.SeedDefaultCategories(); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	// Upload directories for posters and avatars
	for _, kind := range []string{"posters", "avatars"} {
		if err := services.EnsureUploadDir(filepath.Join(cfg.UploadsPath, kind)); err != nil {
			log.Fatal("Failed to create upload directory:", err)
		}
	}

	// Setup routes
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	// Public routes
	r.HandleFunc("/", handlers.LoginHandler)
	r.HandleFunc("/register/", handlers.RegisterHandler)
	r.Post("/logout/", handlers.LogoutHandler)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Get("/uploads/{kind}/{file}", handlers.ServeUploadHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/movies/", handlers.MovieListHandler)
		r.HandleFunc("/movie/add/", handlers.MovieCreateHandler)
		r.Get("/movie/{slug}/", handlers.MovieDetailHandler)
		r.HandleFunc("/movie/{slug}/edit/", handlers.MovieEditHandler)
		r.HandleFunc("/movie/{slug}/delete/", handlers.MovieDeleteHandler)
		r.Post("/movie/{slug}/comment/add/", handlers.AddCommentHandler)
		r.Post("/movie/{slug}/favorite/", handlers.ToggleFavoriteHandler)
		r.Post("/comment/{id}/delete/", handlers.DeleteCommentHandler)

		r.Get("/category/{slug}/", handlers.MoviesByCategoryHandler)
		r.Get("/search/", handlers.SearchHandler)
		r.Get("/user/{username}/", handlers.UserMoviesHandler)

		r.Get("/dashboard/", handlers.DashboardHandler)
		r.HandleFunc("/profile/edit/", handlers.ProfileEditHandler)

		// Staff-only category management
		r.Get("/categories/", handlers.CategoriesHandler)
		r.Post("/categories/add/", handlers.CategoryCreateHandler)
		r.Post("/category/{slug}/delete/", handlers.CategoryDeleteHandler)
	})

	addr := ":" + cfg.ServerPort
	logger.Info("cinelog starting", "addr", addr, "env", cfg.Environment)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
