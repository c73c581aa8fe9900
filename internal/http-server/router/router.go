package router

import (
	"net/http"

	"pdf-hero/internal/http-server/handler/pdf"
	"pdf-hero/internal/http-server/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Handler struct {
	PDFHandler *pdf.PDFHandler
}

func SetupRouter(h *Handler, allowedOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-PDF-Stats", "Content-Disposition"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.PDFHandler.Health)

		r.Route("/pdf", func(r chi.Router) {
			r.Post("/compress", h.PDFHandler.Compress)
			r.Post("/merge", h.PDFHandler.Merge)
			r.Post("/jpg-to-pdf", h.PDFHandler.ConvertImages)
		})
	})

	return r
}
