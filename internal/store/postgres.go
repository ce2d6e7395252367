package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"anveshai/internal/domain"
)

const createGeneratedImagesTable = `
CREATE TABLE IF NOT EXISTS generated_images (
    id           varchar PRIMARY KEY,
    prompt       text NOT NULL,
    image_url    text NOT NULL,
    image_base64 text,
    created_at   timestamptz NOT NULL DEFAULT now()
)`

// PostgresStore persists records in a generated_images table via pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore ensures the schema exists and returns the store.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createGeneratedImagesTable); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *PostgresStore) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Create inserts a new record and returns it.
func (s *PostgresStore) Create(ctx context.Context, draft domain.ImageDraft) (*domain.GeneratedImage, error) {
	record := &domain.GeneratedImage{
		ID:          uuid.NewString(),
		Prompt:      draft.Prompt,
		ImageURL:    draft.ImageURL,
		ImageBase64: draft.ImageBase64,
		CreatedAt:   time.Now().UTC(),
	}
	var inline *string
	if record.ImageBase64 != "" {
		inline = &record.ImageBase64
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO generated_images (id, prompt, image_url, image_base64, created_at) VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.Prompt, record.ImageURL, inline, record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("store: insert record: %w", err)
	}
	return record, nil
}

// List returns records newest-first.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]*domain.GeneratedImage, error) {
	limit, offset = clampWindow(limit, offset)
	rows, err := s.pool.Query(ctx,
		`SELECT id, prompt, image_url, image_base64, created_at
		 FROM generated_images
		 ORDER BY created_at DESC, id
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("store: list records: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.GeneratedImage, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate records: %w", err)
	}
	return records, nil
}

// GetByID returns the matching record or domain.ErrNotFound.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*domain.GeneratedImage, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, prompt, image_url, image_base64, created_at FROM generated_images WHERE id = $1`, id)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

func scanRecord(row pgx.Row) (*domain.GeneratedImage, error) {
	var record domain.GeneratedImage
	var inline *string
	if err := row.Scan(&record.ID, &record.Prompt, &record.ImageURL, &inline, &record.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("store: scan record: %w", err)
	}
	if inline != nil {
		record.ImageBase64 = *inline
	}
	return &record, nil
}

var _ Store = (*PostgresStore)(nil)
