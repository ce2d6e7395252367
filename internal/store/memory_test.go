package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"anveshai/internal/domain"
)

func createN(t *testing.T, s Store, n int) []*domain.GeneratedImage {
	t.Helper()
	records := make([]*domain.GeneratedImage, 0, n)
	for i := 0; i < n; i++ {
		record, err := s.Create(context.Background(), domain.ImageDraft{
			Prompt:   fmt.Sprintf("prompt %d", i),
			ImageURL: "data:image/svg+xml;base64,Zm9v",
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		records = append(records, record)
	}
	return records
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	created := createN(t, s, 2)

	records, err := s.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].ID != created[1].ID || records[1].ID != created[0].ID {
		t.Fatalf("records not newest-first: got %s,%s want %s,%s",
			records[0].ID, records[1].ID, created[1].ID, created[0].ID)
	}
}

func TestMemoryStoreListWindowing(t *testing.T) {
	s := NewMemoryStore()
	createN(t, s, 10)

	testCases := []struct {
		name          string
		limit, offset int
		wantLen       int
	}{
		{name: "tail slice", limit: 3, offset: 8, wantLen: 2},
		{name: "offset beyond range", limit: 5, offset: 20, wantLen: 0},
		{name: "default limit", limit: 0, offset: 0, wantLen: 10},
		{name: "negative offset treated as zero", limit: 4, offset: -1, wantLen: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := s.List(context.Background(), tc.limit, tc.offset)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(records) != tc.wantLen {
				t.Fatalf("len = %d, want %d", len(records), tc.wantLen)
			}
		})
	}
}

func TestMemoryStoreListCapsLimit(t *testing.T) {
	limit, _ := clampWindow(500, 0)
	if limit != MaxListLimit {
		t.Fatalf("clamped limit = %d, want %d", limit, MaxListLimit)
	}
}

func TestMemoryStoreGetByID(t *testing.T) {
	s := NewMemoryStore()
	created := createN(t, s, 1)[0]

	got, err := s.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Prompt != created.Prompt {
		t.Fatalf("prompt = %q, want %q", got.Prompt, created.Prompt)
	}

	if _, err := s.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreCreatePreservesInlineBytes(t *testing.T) {
	s := NewMemoryStore()
	record, err := s.Create(context.Background(), domain.ImageDraft{
		Prompt:      "p",
		ImageURL:    "data:image/jpeg;base64,AAAA",
		ImageBase64: "AAAA",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if record.ImageBase64 != "AAAA" {
		t.Fatalf("inline bytes dropped: %q", record.ImageBase64)
	}
	if record.ID == "" || record.CreatedAt.IsZero() {
		t.Fatalf("id/timestamp not assigned: %+v", record)
	}
}
