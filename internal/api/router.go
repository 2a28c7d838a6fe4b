package api

import (
	"net/http"

	"github.com/dom/prodle/internal/api/handlers"
	"github.com/dom/prodle/internal/api/middleware"
	"github.com/dom/prodle/internal/config"
	"github.com/dom/prodle/internal/service"
	"github.com/dom/prodle/internal/validation"
	"github.com/dom/prodle/internal/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, limiter middleware.Limiter, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5, "application/json", "text/html", "text/css", "text/javascript"))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(services.Game)
	suggestionHandler := handlers.NewSuggestionHandler(services.Suggestion, validation.New())
	dailyHandler := handlers.NewDailyHandler(services.Daily, cfg.EnableDebug)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))

		r.Get("/daily", dailyHandler.Info)
		r.Get("/debug/answer", dailyHandler.Answer)

		// Rate limited routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(limiter))

			r.Get("/suggestions", suggestionHandler.List)
			r.Post("/guess", gameHandler.Guess)
			r.Post("/reroll", dailyHandler.Reroll)
		})
	})

	// Pages and static files
	r.Get("/", web.Page("index.html"))
	r.Get("/reroll", web.Page("reroll.html"))
	r.Handle("/assets/*", web.Assets())
	r.Handle(service.TeamImagesPath+"*", http.StripPrefix(service.TeamImagesPath, http.FileServer(http.Dir(cfg.TeamImagesDir))))

	return r
}
