package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"anveshai/internal/domain"
)

// MemoryStore keeps records in process memory only; everything is lost on
// restart. Intended for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.GeneratedImage
	ordered []*domain.GeneratedImage // insertion order, oldest first
}

// NewMemoryStore initializes an empty volatile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]*domain.GeneratedImage)}
}

// Create assigns an id and timestamp and records the draft.
func (s *MemoryStore) Create(ctx context.Context, draft domain.ImageDraft) (*domain.GeneratedImage, error) {
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
	s.byID[record.ID] = record
	s.ordered = append(s.ordered, record)
	s.mu.Unlock()

	out := *record
	return &out, nil
}

// List returns records newest-first.
func (s *MemoryStore) List(ctx context.Context, limit, offset int) ([]*domain.GeneratedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampWindow(limit, offset)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return sliceNewestFirst(s.ordered, limit, offset), nil
}

// GetByID returns the matching record or domain.ErrNotFound.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*domain.GeneratedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	record, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *record
	return &out, nil
}

// sliceNewestFirst copies the [offset, offset+limit) window of ordered
// (oldest first) walking backwards, so callers see newest records first.
func sliceNewestFirst(ordered []*domain.GeneratedImage, limit, offset int) []*domain.GeneratedImage {
	out := make([]*domain.GeneratedImage, 0, limit)
	for i := len(ordered) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		record := *ordered[i]
		out = append(out, &record)
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
