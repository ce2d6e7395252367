package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"anveshai/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("huggingface: api key is required")

// HuggingFaceOptions configures the Hugging Face inference client.
type HuggingFaceOptions struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// HuggingFace generates images through the hosted inference API. It is only
// attempted when an API key is configured.
type HuggingFace struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

type inferenceRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters inferenceParams `json:"parameters"`
}

type inferenceParams struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	GuidanceScale     float64 `json:"guidance_scale"`
	NumInferenceSteps int     `json:"num_inference_steps"`
}

// NewHuggingFace constructs a client with sane defaults and injected dependencies.
func NewHuggingFace(opts HuggingFaceOptions) *HuggingFace {
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
		baseURL = "https://api-inference.huggingface.co"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "stabilityai/stable-diffusion-2-1"
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.Nop()
		logger = &discard
	}
	return &HuggingFace{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Name identifies the provider.
func (h *HuggingFace) Name() string { return "huggingface" }

// Available reports whether the client can perform remote calls.
func (h *HuggingFace) Available() bool { return h.apiKey != "" }

// Generate posts the prompt with fixed generation parameters and returns the
// raw image bytes on success.
func (h *HuggingFace) Generate(ctx context.Context, prompt string) (*Payload, error) {
	if !h.Available() {
		return nil, ErrMissingAPIKey
	}
	payload := inferenceRequest{
		Inputs: prompt + QualitySuffix,
		Parameters: inferenceParams{
			Width:             1024,
			Height:            1024,
			GuidanceScale:     7.5,
			NumInferenceSteps: 50,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("huggingface: encode request: %w", err)
	}
	endpoint := h.baseURL + "/models/" + h.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface: http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("huggingface: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: read response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("huggingface: empty response body")
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" || !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	h.logger.Debug().Str("model", h.model).Int("bytes", len(data)).Msg("huggingface: generated image")
	return &Payload{Data: data, MIME: mime}, nil
}

var _ Generator = (*HuggingFace)(nil)
