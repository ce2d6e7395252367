package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"anveshai/internal/domain"
)

const indexFileName = "images.json"

// FileStore persists records to a single JSON index rewritten in its
// entirety on every create, plus one <id>.jpg file per record with inline
// bytes. The whole read-modify-write cycle is serialized behind a mutex so
// concurrent creates cannot lose records.
type FileStore struct {
	mu      sync.Mutex
	dir     string
	byID    map[string]*domain.GeneratedImage
	ordered []*domain.GeneratedImage
	logger  zerolog.Logger
}

// NewFileStore opens (or initializes) a store rooted at dir. A missing or
// unreadable index is treated as an empty collection, not an error.
func NewFileStore(dir string, logger zerolog.Logger) (*FileStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store: base path is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	s := &FileStore{
		dir:    dir,
		byID:   make(map[string]*domain.GeneratedImage),
		logger: logger,
	}
	s.loadIndex()
	return s, nil
}

// Dir returns the configured root directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) indexPath() string {
	return filepath.Join(s.dir, indexFileName)
}

func (s *FileStore) loadIndex() {
	raw, err := os.ReadFile(s.indexPath())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Msg("store: read index failed, starting empty")
		}
		return
	}
	var records []*domain.GeneratedImage
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn().Err(err).Msg("store: decode index failed, starting empty")
		return
	}
	s.ordered = records
	for _, record := range records {
		s.byID[record.ID] = record
	}
}

// Create assigns an id and timestamp, writes the image file when inline
// bytes are present, and rewrites the index. A failed image-file write is
// logged and the record keeps its inline data URL; a failed index write is
// logged and the record stays in memory.
func (s *FileStore) Create(ctx context.Context, draft domain.ImageDraft) (*domain.GeneratedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record := &domain.GeneratedImage{
		ID:          uuid.NewString(),
		Prompt:      draft.Prompt,
		ImageURL:    draft.ImageURL,
		ImageBase64: draft.ImageBase64,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ImageBase64 != "" {
		if err := s.writeImageFile(record.ID, record.ImageBase64); err != nil {
			s.logger.Warn().Err(err).Str("id", record.ID).Msg("store: image file write failed, serving inline data")
		} else {
			record.ImageURL = "/api/images/" + record.ID + "/file"
		}
	}

	s.byID[record.ID] = record
	s.ordered = append(s.ordered, record)

	if err := s.writeIndex(); err != nil {
		s.logger.Warn().Err(err).Msg("store: index write failed, record kept in memory")
	}

	out := *record
	return &out, nil
}

func (s *FileStore) writeImageFile(id, encoded string) error {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("store: decode inline bytes: %w", err)
	}
	path := filepath.Join(s.dir, id+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: write image file: %w", err)
	}
	return nil
}

func (s *FileStore) writeIndex() error {
	raw, err := json.Marshal(s.ordered)
	if err != nil {
		return fmt.Errorf("store: encode index: %w", err)
	}
	if err := os.WriteFile(s.indexPath(), raw, 0o644); err != nil {
		return fmt.Errorf("store: write index: %w", err)
	}
	return nil
}

// List returns records newest-first.
func (s *FileStore) List(ctx context.Context, limit, offset int) ([]*domain.GeneratedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampWindow(limit, offset)

	s.mu.Lock()
	defer s.mu.Unlock()
	return sliceNewestFirst(s.ordered, limit, offset), nil
}

// GetByID returns the matching record or domain.ErrNotFound.
func (s *FileStore) GetByID(ctx context.Context, id string) (*domain.GeneratedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	record, ok := s.byID[id]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *record
	return &out, nil
}

var _ Store = (*FileStore)(nil)
