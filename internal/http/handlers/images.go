package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"anveshai/internal/domain"
	"anveshai/internal/prompt"
)

const maxPromptLength = 1000

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (a *App) validationError(w http.ResponseWriter, errs ...fieldError) {
	a.json(w, http.StatusBadRequest, map[string]any{
		"message": "Invalid request",
		"errors":  errs,
	})
}

// Generate runs the provider chain for the submitted prompt and persists the
// result. The chain's guaranteed fallback means a valid prompt always yields
// an image.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSONBody(r, &req); err != nil {
		a.validationError(w, fieldError{Field: "body", Message: "invalid JSON payload"})
		return
	}
	if req.Prompt == "" {
		a.validationError(w, fieldError{Field: "prompt", Message: "Prompt is required"})
		return
	}
	if len([]rune(req.Prompt)) > maxPromptLength {
		a.validationError(w, fieldError{Field: "prompt", Message: "Prompt too long"})
		return
	}

	chainPrompt := req.Prompt
	if a.Config != nil && a.Config.EnhancePrompts {
		chainPrompt = prompt.Enhance(req.Prompt)
	}

	result, err := a.Images.Generate(r.Context(), chainPrompt)
	if err != nil {
		a.Logger.Error().Err(err).Msg("image generation failed")
		a.error(w, http.StatusInternalServerError, "Failed to generate image")
		return
	}

	record, err := a.Store.Create(r.Context(), domain.ImageDraft{
		Prompt:      req.Prompt,
		ImageURL:    result.ImageURL,
		ImageBase64: result.ImageBase64,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("store create failed")
		a.error(w, http.StatusInternalServerError, "Failed to generate image")
		return
	}

	a.json(w, http.StatusOK, record)
}

// ListImages returns the gallery, newest first.
func (a *App) ListImages(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	records, err := a.Store.List(r.Context(), limit, offset)
	if err != nil {
		a.Logger.Error().Err(err).Msg("store list failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch images")
		return
	}
	if records == nil {
		records = []*domain.GeneratedImage{}
	}
	a.json(w, http.StatusOK, records)
}

// GetImage returns a single record by id.
func (a *App) GetImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := a.Store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Image not found")
			return
		}
		a.Logger.Error().Err(err).Msg("store get failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch image")
		return
	}
	a.json(w, http.StatusOK, record)
}

// GetImageFile serves the binary image bytes for a record: the on-disk file
// when present, otherwise the record's inline base64 payload.
func (a *App) GetImageFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validFileID(id) {
		a.error(w, http.StatusNotFound, "Image not found")
		return
	}

	if data := a.loadFileBytes(id); data != nil {
		serveImageBytes(w, data)
		return
	}

	record, err := a.Store.GetByID(r.Context(), id)
	if err == nil && record.ImageBase64 != "" {
		if data, decErr := base64.StdEncoding.DecodeString(record.ImageBase64); decErr == nil {
			serveImageBytes(w, data)
			return
		}
	}

	a.error(w, http.StatusNotFound, "Image not found")
}

// loadFileBytes reads <id>.jpg from the storage directory through the
// short-lived byte cache.
func (a *App) loadFileBytes(id string) []byte {
	if cached, ok := a.fileCache.Get(id); ok {
		if data, ok := cached.([]byte); ok {
			return data
		}
	}
	path := filepath.Join(a.Config.StoragePath, id+".jpg")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	a.fileCache.SetDefault(id, data)
	return data
}

func serveImageBytes(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type debugFileInfo struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Created string `json:"created"`
}

// DebugFiles lists the stored files. Operational tool, not part of the core
// contract.
func (a *App) DebugFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(a.Config.StoragePath)
	if err != nil {
		a.json(w, http.StatusInternalServerError, map[string]any{
			"message": "Error reading files",
			"error":   err.Error(),
		})
		return
	}
	files := make([]debugFileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, debugFileInfo{
			Name:    entry.Name(),
			Size:    info.Size(),
			Created: info.ModTime().UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"files": files})
}

func validFileID(id string) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(id, "/\\") && !strings.Contains(id, "..")
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
