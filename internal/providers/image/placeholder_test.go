package image

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPlaceholderGenerate(t *testing.T) {
	p := &Placeholder{}

	payload, err := p.Generate(context.Background(), "a red cat")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if payload.MIME != "image/svg+xml" {
		t.Fatalf("mime = %q, want image/svg+xml", payload.MIME)
	}
	if !payload.Branded {
		t.Fatalf("placeholder payload should be marked branded")
	}
	svg := string(payload.Data)
	if !strings.Contains(svg, "a red cat") {
		t.Fatalf("svg missing prompt text: %s", svg)
	}
	if !strings.Contains(svg, "Generated by Anvesh AI") {
		t.Fatalf("svg missing branding caption")
	}
}

func TestPlaceholderTruncatesLongPrompts(t *testing.T) {
	p := &Placeholder{}
	long := strings.Repeat("x", 60)

	payload, err := p.Generate(context.Background(), long)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	svg := string(payload.Data)
	want := strings.Repeat("x", 37) + "..."
	if !strings.Contains(svg, want) {
		t.Fatalf("svg missing truncated prompt %q", want)
	}
	if strings.Contains(svg, strings.Repeat("x", 41)) {
		t.Fatalf("svg contains untruncated prompt")
	}
}

func TestPlaceholderEscapesMarkup(t *testing.T) {
	p := &Placeholder{}

	payload, err := p.Generate(context.Background(), `cat <&> "dog"`)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	svg := string(payload.Data)
	if strings.Contains(svg, `cat <&>`) {
		t.Fatalf("svg contains unescaped markup: %s", svg)
	}
	if !strings.Contains(svg, "cat &lt;&amp;&gt;") {
		t.Fatalf("svg missing escaped prompt: %s", svg)
	}
}

func TestPlaceholderPaletteIsDeterministic(t *testing.T) {
	first := PaletteIndex("a red cat")
	for i := 0; i < 10; i++ {
		if got := PaletteIndex("a red cat"); got != first {
			t.Fatalf("palette index changed between calls: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= len(placeholderPalette) {
		t.Fatalf("palette index %d out of range", first)
	}
}

func TestPlaceholderHonorsContextDuringDelay(t *testing.T) {
	p := &Placeholder{MinDelay: time.Minute, MaxDelay: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := p.Generate(ctx, "slow"); err == nil {
		t.Fatalf("expected context error during artificial delay")
	}
}
