package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"anveshai/internal/http/handlers"
	mw "anveshai/internal/middleware"
)

// NewRouter builds the chi router with the standard middleware stack.
func NewRouter(app *handlers.App, lookup mw.CountryLookup, rateLimitPerMin int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		mw.Logger(app.Logger, lookup),
		mw.CORS([]string{"*"}),
	)
	if rateLimitPerMin > 0 {
		r.Use(mw.RateLimit(rateLimitPerMin, time.Minute))
	}

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", app.Generate)
		r.Route("/images", func(r chi.Router) {
			r.Get("/", app.ListImages)
			r.Get("/{id}", app.GetImage)
			r.Get("/{id}/file", app.GetImageFile)
		})
		r.Get("/debug/files", app.DebugFiles)
	})

	return r
}
