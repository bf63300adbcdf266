package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"html2md-mapper/internal/handlers"
	"html2md-mapper/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ConverterService service.ConverterService
	Engine           service.MappingEngine
	MaxBodyBytes     int64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)
	if deps.MaxBodyBytes > 0 {
		r.Use(BodyLimit(deps.MaxBodyBytes))
	}

	convertHandler := handlers.NewConvertHandler(deps.ConverterService)
	findByLineHandler := handlers.NewFindByLineHandler(deps.ConverterService)
	previewHandler := handlers.NewPreviewHandler()
	healthHandler := handlers.NewHealthHandler(deps.Engine)
	indexHandler := handlers.NewIndexHandler()

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/convert", convertHandler)
		r.Method(http.MethodGet, "/mappings/line/{line}", findByLineHandler)
		r.Method(http.MethodPost, "/preview", previewHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Serve the tester page at root
	r.Method(http.MethodGet, "/", indexHandler)

	return r
}
