package image

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"anveshai/internal/infra"
)

const pollinationsSeedRange = 1000000

// PollinationsOptions configures the Pollinations client.
type PollinationsOptions struct {
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Pollinations generates images through the keyless pollinations.ai GET
// endpoint. It is the primary backend of the chain.
type Pollinations struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewPollinations constructs a client with sane defaults and injected dependencies.
func NewPollinations(opts PollinationsOptions) *Pollinations {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 45 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://image.pollinations.ai"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "flux"
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.Nop()
		logger = &discard
	}
	return &Pollinations{
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Name identifies the provider.
func (p *Pollinations) Name() string { return "pollinations" }

// Available always reports true; the endpoint requires no credentials.
func (p *Pollinations) Available() bool { return true }

// Generate fetches one 1024x1024 image for the prompt. Success requires an
// HTTP success status and an image content type; anything else is an error
// so the chain can fall through.
func (p *Pollinations) Generate(ctx context.Context, prompt string) (*Payload, error) {
	endpoint := fmt.Sprintf("%s/prompt/%s?width=1024&height=1024&seed=%d&enhance=true&model=%s",
		p.baseURL, url.PathEscape(prompt+QualitySuffix), rand.IntN(pollinationsSeedRange), p.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("pollinations: build request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pollinations: http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pollinations: status %d", resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "image") {
		return nil, fmt.Errorf("pollinations: unexpected content type %q", contentType)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pollinations: read response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("pollinations: empty response body")
	}

	p.logger.Debug().Str("model", p.model).Int("bytes", len(data)).Msg("pollinations: generated image")
	return &Payload{Data: data, MIME: contentType}, nil
}

var _ Generator = (*Pollinations)(nil)
