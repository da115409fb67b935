package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"furnisure/backend/internal/app/config"
	"furnisure/backend/internal/app/http/handlers"
	"furnisure/backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	r.NotFound(h.NotFound)
	r.Get("/health", h.Health)

	r.Route("/api/quotations", func(r chi.Router) {
		r.Get("/", h.ListQuotations)
		r.Post("/", h.CreateQuotation)
		r.Get("/{id}", h.GetQuotation)
		r.Put("/{id}", h.UpdateQuotation)
		r.Delete("/{id}", h.DeleteQuotation)
		r.Get("/{id}/pdf", h.QuotationPDF)
	})

	if cfg.StaticDir != "" {
		r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	return r
}
