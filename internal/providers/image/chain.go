package image

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"

	"anveshai/internal/domain"
)

// Brander applies the custom watermark pass to raw image bytes and returns
// the self-describing data URL plus the final encoded bytes. Implementations
// must not fail: on processing errors they return the input re-wrapped.
type Brander interface {
	Brand(data []byte) (string, []byte)
}

// Result is the outcome of a chain run handed to the HTTP layer.
type Result struct {
	ImageURL    string
	ImageBase64 string
	// Provider names the backend that served the request, so operators can
	// tell fallback traffic from primary traffic in logs and metrics.
	Provider string
}

// Chain tries each configured provider in order and returns the first
// success. Remote payloads pass through the brander; payloads already
// branded (the synthetic fallback) are wrapped as-is. As long as the final
// provider is the guaranteed placeholder, the chain never fails.
type Chain struct {
	providers []Generator
	brander   Brander
	logger    zerolog.Logger
}

// NewChain wires the providers in fallback order.
func NewChain(logger zerolog.Logger, brander Brander, providers ...Generator) *Chain {
	return &Chain{providers: providers, brander: brander, logger: logger}
}

// Generate runs the chain for one prompt. Individual backend failures are
// logged and skipped, never aggregated or surfaced.
func (c *Chain) Generate(ctx context.Context, prompt string) (*Result, error) {
	for _, p := range c.providers {
		if !p.Available() {
			c.logger.Debug().Str("provider", p.Name()).Msg("image provider skipped: not configured")
			continue
		}
		payload, err := p.Generate(ctx, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn().Err(err).Str("provider", p.Name()).Msg("image provider failed")
			continue
		}

		var dataURL string
		data := payload.Data
		if payload.Branded || c.brander == nil {
			dataURL = encodeDataURL(payload.MIME, data)
		} else {
			dataURL, data = c.brander.Brand(data)
		}

		c.logger.Info().
			Str("provider", p.Name()).
			Int("bytes", len(data)).
			Msg("image generated")
		return &Result{
			ImageURL:    dataURL,
			ImageBase64: base64.StdEncoding.EncodeToString(data),
			Provider:    p.Name(),
		}, nil
	}
	return nil, fmt.Errorf("image chain exhausted: %w", domain.ErrProviderFailure)
}

func encodeDataURL(mime string, data []byte) string {
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
