/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /health               Liveness probe
  /api/scheme           Scheme parameters
  /api/sample           Example input download
  /api/runs/*           Statement runs

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. allowedOrigins
// feeds the CORS middleware; "*" opens the API to any origin.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/scheme", h.GetScheme)
		r.Get("/sample", h.DownloadSample)

		r.Route("/runs", func(r chi.Router) {
			r.Get("/", h.ListRuns)
			r.Post("/", h.CreateRun)
			r.Get("/{runID}", h.GetRun)
			r.Get("/{runID}/statements", h.GetRunStatements)
			r.Get("/{runID}/export", h.ExportRun)
		})
	})

	// A small landing page instead of a bare 404 on the root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>EPF Statement Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>EPF Statement Engine API</h1>
<p>Upload an input workbook to <code>POST /api/runs</code> to compute annual account statements.</p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/scheme">/api/scheme</a> - Scheme parameters</li>
<li><a href="/api/sample">/api/sample</a> - Example input workbook</li>
<li><a href="/api/runs">/api/runs</a> - Statement runs</li>
</ul>
</body>
</html>`))
	})

	return r
}
