package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"anveshai/internal/infra"
	image "anveshai/internal/providers/image"
	"anveshai/internal/store"
)

// ImageGenerator is the slice of the provider chain the handlers depend on.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*image.Result, error)
}

// App bundles the dependencies shared by all handlers.
type App struct {
	Config *infra.Config
	Logger infra.Logger
	Store  store.Store
	Images ImageGenerator

	fileCache *gocache.Cache
}

// NewApp wires the handler container.
func NewApp(cfg *infra.Config, logger infra.Logger, st store.Store, images ImageGenerator) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		Store:     st,
		Images:    images,
		fileCache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func decodeJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"message": message})
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
