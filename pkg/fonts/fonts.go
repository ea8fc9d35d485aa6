// Package fonts provides the embedded label font and its metrics.
//
// The label is set in Go Regular from golang.org/x/image/font/gofont, which
// is compiled into the binary, so rendering never depends on system fonts.
// Both sinks measure text with the same face, so label boxes line up in PNG
// and SVG output.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/render"
)

// DefaultSize is the label font size in points.
const DefaultSize = 24.0

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fonts for SVG viewers that ignore the embedded face.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

var (
	parsed     *opentype.Font
	parsedErr  error
	parsedOnce sync.Once
)

// Regular returns the parsed Go Regular font. It is parsed once.
func Regular() (*opentype.Font, error) {
	parsedOnce.Do(func() {
		parsed, parsedErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parsedErr
}

// NewFace returns a face of the embedded font at size points (72 DPI, so one
// point is one pixel). Faces are not safe for concurrent use.
func NewFace(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font")
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %gpt face", size)
	}
	return face, nil
}

// Measure returns the ink extents of s set in face, relative to the pen
// position on the baseline.
func Measure(face font.Face, s string) render.TextExtents {
	b, adv := font.BoundString(face, s)
	return render.TextExtents{
		XBearing: toFloat(b.Min.X),
		YBearing: toFloat(b.Min.Y),
		Width:    toFloat(b.Max.X - b.Min.X),
		Height:   toFloat(b.Max.Y - b.Min.Y),
		XAdvance: toFloat(adv),
	}
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularTTFBase64 returns the embedded TTF as base64, for @font-face rules
// in SVG output. The result is cached after first computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}
