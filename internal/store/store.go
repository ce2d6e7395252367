// Package store persists generated-image records behind one capability
// contract with volatile, file-backed, and Postgres implementations.
package store

import (
	"context"

	"anveshai/internal/domain"
)

const (
	// DefaultListLimit applies when the caller passes a non-positive limit.
	DefaultListLimit = 50
	// MaxListLimit caps any requested page size.
	MaxListLimit = 100
)

// Store is the contract shared by all record store backends. Records are
// create/read only; there is no update or delete.
type Store interface {
	// Create assigns a new unique id and creation timestamp, persists the
	// draft, and returns the full record. Inline encoded bytes present on
	// the draft are preserved on the returned record.
	Create(ctx context.Context, draft domain.ImageDraft) (*domain.GeneratedImage, error)
	// List returns records newest-first, sliced by [offset, offset+limit).
	// Out-of-range offsets yield an empty slice.
	List(ctx context.Context, limit, offset int) ([]*domain.GeneratedImage, error)
	// GetByID returns the matching record or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.GeneratedImage, error)
}

func clampWindow(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
