package image

import "context"

// QualitySuffix is appended to every prompt sent to a remote generation
// backend to bias the model toward high-quality output.
const QualitySuffix = ", high quality, detailed, masterpiece, best quality, ultra detailed, 8k resolution"

// Payload is the raw output of a single provider attempt.
type Payload struct {
	Data []byte
	MIME string
	// Branded marks payloads that already carry our branding and must not
	// pass through the watermark processor (synthetic fallbacks).
	Branded bool
}

// Generator is the contract implemented by all image providers.
type Generator interface {
	// Name identifies the provider in logs and chain results.
	Name() string
	// Available reports whether the provider can be attempted at all,
	// e.g. whether credentials are configured.
	Available() bool
	Generate(ctx context.Context, prompt string) (*Payload, error)
}
