package domain

import "time"

// GeneratedImage is the persisted unit of data for one generated image.
// Records are immutable once created; there is no update or delete.
type GeneratedImage struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"prompt"`
	ImageURL    string    `json:"imageUrl"`
	ImageBase64 string    `json:"imageBase64,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ImageDraft carries the fields a caller supplies when creating a record.
// ID and CreatedAt are assigned by the store.
type ImageDraft struct {
	Prompt      string
	ImageURL    string
	ImageBase64 string
}
