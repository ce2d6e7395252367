package image

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	placeholderCaption   = "Generated by Anvesh AI"
	placeholderMaxPrompt = 40
)

type paletteColor struct {
	bg   string
	text string
}

var placeholderPalette = []paletteColor{
	{bg: "#FF6B6B", text: "#FFFFFF"}, // red
	{bg: "#4ECDC4", text: "#FFFFFF"}, // teal
	{bg: "#45B7D1", text: "#FFFFFF"}, // blue
	{bg: "#96CEB4", text: "#FFFFFF"}, // green
	{bg: "#FFEAA7", text: "#2D3436"}, // yellow
	{bg: "#DDA0DD", text: "#FFFFFF"}, // plum
	{bg: "#98D8C8", text: "#2D3436"}, // mint
	{bg: "#F7DC6F", text: "#2D3436"}, // light yellow
}

// Placeholder is the deterministic local fallback. It always succeeds,
// synthesizing an SVG card colored by the prompt with a truncated prompt
// rendering and the branding caption. The payload is marked branded so the
// chain skips the watermark pass.
type Placeholder struct {
	// MinDelay/MaxDelay bound the artificial latency emulating a real
	// generation round trip. Tests set both to zero.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// NewPlaceholder returns a fallback with the production 2-5s latency window.
func NewPlaceholder() *Placeholder {
	return &Placeholder{MinDelay: 2 * time.Second, MaxDelay: 5 * time.Second}
}

// Name identifies the provider.
func (p *Placeholder) Name() string { return "placeholder" }

// Available always reports true; the fallback is the chain's guarantee.
func (p *Placeholder) Available() bool { return true }

// Generate synthesizes the SVG payload after the artificial delay.
func (p *Placeholder) Generate(ctx context.Context, prompt string) (*Payload, error) {
	svg := renderPlaceholderSVG(prompt)

	if delay := p.delay(); delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &Payload{Data: []byte(svg), MIME: "image/svg+xml", Branded: true}, nil
}

func (p *Placeholder) delay() time.Duration {
	if p.MaxDelay <= p.MinDelay {
		return p.MinDelay
	}
	return p.MinDelay + rand.N(p.MaxDelay-p.MinDelay)
}

// PaletteIndex derives the color slot for a prompt: the sum of its character
// codes modulo the palette size.
func PaletteIndex(prompt string) int {
	sum := 0
	for _, r := range prompt {
		sum += int(r)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum % len(placeholderPalette)
}

func renderPlaceholderSVG(prompt string) string {
	c := placeholderPalette[PaletteIndex(prompt)]
	label := prompt
	if runes := []rune(label); len(runes) > placeholderMaxPrompt {
		label = string(runes[:placeholderMaxPrompt-3]) + "..."
	}
	label = escapeXML(label)

	return fmt.Sprintf(`<svg width="512" height="512" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="grad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%[1]s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%[1]sCC;stop-opacity:1" />
    </linearGradient>
  </defs>
  <rect width="512" height="512" fill="url(#grad)"/>
  <circle cx="256" cy="200" r="80" fill="%[2]s" opacity="0.2"/>
  <rect x="176" y="240" width="160" height="120" rx="20" fill="%[2]s" opacity="0.3"/>
  <text x="256" y="400" font-family="Arial, sans-serif" font-size="16" font-weight="bold" text-anchor="middle" fill="%[2]s">%[3]s</text>
  <text x="256" y="430" font-family="Arial, sans-serif" font-size="12" text-anchor="middle" fill="%[2]s" opacity="0.8">%[4]s</text>
</svg>`, c.bg, c.text, label, placeholderCaption)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

var _ Generator = (*Placeholder)(nil)
