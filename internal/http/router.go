package httpx

import (
	"encoding/json"
	"net/http"

	"discounts/internal/config"
	"discounts/internal/http/handlers"
	"discounts/internal/search"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the search endpoints behind the shared middleware stack.
func NewRouter(cfg config.Cfg, svc *search.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Route("/api/search", func(r chi.Router) {
		r.Get("/", handlers.Search(svc))
		r.Post("/list", handlers.SearchList(svc))
	})

	return r
}
