package image

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHuggingFaceGeneratePayload(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	}))
	defer server.Close()

	client := NewHuggingFace(HuggingFaceOptions{
		APIKey:     "hf-test",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if !client.Available() {
		t.Fatalf("client with key should be available")
	}

	payload, err := client.Generate(context.Background(), "a red cat")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(payload.Data) == 0 {
		t.Fatalf("expected image bytes")
	}
	if gotAuth != "Bearer hf-test" {
		t.Fatalf("authorization = %q, want Bearer hf-test", gotAuth)
	}

	var decoded map[string]any
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	inputs := decoded["inputs"].(string)
	if !strings.HasPrefix(inputs, "a red cat") || !strings.Contains(inputs, "8k resolution") {
		t.Fatalf("inputs = %q, want prompt with quality suffix", inputs)
	}
	params := decoded["parameters"].(map[string]any)
	if params["width"].(float64) != 1024 || params["height"].(float64) != 1024 {
		t.Fatalf("unexpected resolution: %v", params)
	}
	if params["guidance_scale"].(float64) != 7.5 {
		t.Fatalf("guidance_scale = %v, want 7.5", params["guidance_scale"])
	}
	if params["num_inference_steps"].(float64) != 50 {
		t.Fatalf("num_inference_steps = %v, want 50", params["num_inference_steps"])
	}
}

func TestHuggingFaceWithoutKey(t *testing.T) {
	client := NewHuggingFace(HuggingFaceOptions{})
	if client.Available() {
		t.Fatalf("client without key should not be available")
	}
	if _, err := client.Generate(context.Background(), "x"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestHuggingFaceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"model loading"}`))
	}))
	defer server.Close()

	client := NewHuggingFace(HuggingFaceOptions{APIKey: "hf-test", BaseURL: server.URL, HTTPClient: server.Client()})
	if _, err := client.Generate(context.Background(), "x"); err == nil {
		t.Fatalf("expected error on 503")
	}
}
