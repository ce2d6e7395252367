// Package watermark neutralizes an upstream image's branding band and stamps
// our own label before re-encoding.
package watermark

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// bandPercent is the share of image height treated as the upstream
	// watermark band at the bottom edge.
	bandPercent = 8
	// fontPercent sizes the label relative to image width.
	fontPercent  = 2.5
	minFontSize  = 12
	rightMargin  = 15
	bottomOffset = 10
	jpegQuality  = 95
)

var (
	shadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 76}       // rgba(0,0,0,0.3)
	labelColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 204} // rgba(255,255,255,0.8)
)

// Processor rewrites the bottom watermark band of an encoded image and draws
// the branded label bottom-right.
type Processor struct {
	text   string
	font   *opentype.Font
	logger zerolog.Logger
}

// NewProcessor parses the embedded label font once. text defaults to
// "AnveshAI" when empty.
func NewProcessor(text string, logger zerolog.Logger) (*Processor, error) {
	if text == "" {
		text = "AnveshAI"
	}
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("watermark: parse label font: %w", err)
	}
	return &Processor{text: text, font: parsed, logger: logger}, nil
}

// Brand processes raw encoded image bytes and returns a data URL plus the
// final encoded bytes. Processing failures degrade to returning the original
// bytes unmodified; callers never see an error.
func (p *Processor) Brand(data []byte) (string, []byte) {
	processed, err := p.process(data)
	if err != nil {
		p.logger.Warn().Err(err).Msg("watermark: processing failed, passing original through")
		return dataURL(data), data
	}
	return dataURL(processed), processed
}

// process decodes, smears the watermark band, draws the label, and
// re-encodes as JPEG.
func (p *Processor) process(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("watermark: decode image: %w", err)
	}
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), src, bounds.Min, draw.Src)

	// Overwrite the bottom band with the rows immediately above it. This is
	// a best-effort smear, not exact reconstruction.
	band := height * bandPercent / 100
	if band > 0 && height >= 2*band {
		slice := image.NewRGBA(image.Rect(0, 0, width, band))
		draw.Draw(slice, slice.Bounds(), canvas, image.Pt(0, height-2*band), draw.Src)
		draw.Draw(canvas, image.Rect(0, height-band, width, height), slice, image.Point{}, draw.Src)
	}

	if err := p.drawLabel(canvas, width, height); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("watermark: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabel renders the label bottom-right: a 1px-offset dark shadow pass
// under a semi-transparent white main pass.
func (p *Processor) drawLabel(canvas *image.RGBA, width, height int) error {
	size := float64(width) * fontPercent / 100
	if size < minFontSize {
		size = minFontSize
	}
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("watermark: label face: %w", err)
	}
	defer face.Close()

	drawer := &font.Drawer{Dst: canvas, Face: face}
	textWidth := drawer.MeasureString(p.text).Ceil()
	x := width - textWidth - rightMargin
	y := height - bottomOffset

	drawer.Src = image.NewUniform(shadowColor)
	drawer.Dot = fixed.P(x+1, y+1)
	drawer.DrawString(p.text)

	drawer.Src = image.NewUniform(labelColor)
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(p.text)
	return nil
}

func dataURL(data []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}
