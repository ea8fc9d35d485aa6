package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"golang.org/x/image/font"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/fonts"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/render"
)

// SVGOption configures an [SVG] surface.
type SVGOption func(*svgConfig)

type svgConfig struct {
	fontSize  float64
	embedFont bool
	title     string
}

// WithSVGFontSize sets the label font size in points.
func WithSVGFontSize(pt float64) SVGOption {
	return func(c *svgConfig) { c.fontSize = pt }
}

// WithEmbeddedFont inlines the label font as a base64 @font-face rule so the
// document renders identically without the font installed.
func WithEmbeddedFont() SVGOption {
	return func(c *svgConfig) { c.embedFont = true }
}

// WithTitle sets the document title.
func WithTitle(s string) SVGOption {
	return func(c *svgConfig) { c.title = s }
}

// SVG is a vector Surface writing an SVG document.
type SVG struct {
	render.PathBuilder

	buf      bytes.Buffer
	canvas   *svg.SVG
	face     font.Face
	fontSize float64
	done     bool
}

var _ render.Surface = (*SVG)(nil)

// NewSVG starts a document of the given size.
func NewSVG(size geom.Size, opts ...SVGOption) (*SVG, error) {
	cfg := svgConfig{fontSize: fonts.DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(size.W > 0 && size.H > 0) {
		return nil, errors.New(errors.ErrCodeRange, "svg size %s is empty", size)
	}
	face, err := fonts.NewFace(cfg.fontSize)
	if err != nil {
		return nil, err
	}

	s := &SVG{face: face, fontSize: cfg.fontSize}
	s.canvas = svg.New(&s.buf)
	s.canvas.Start(size.W, size.H)
	if cfg.title != "" {
		s.canvas.Title(cfg.title)
	}
	if cfg.embedFont {
		s.canvas.Style("text/css", fmt.Sprintf(
			"@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			fonts.FontFamily, fonts.RegularTTFBase64()))
	}
	return s, nil
}

func (s *SVG) FillRect(r geom.Rect, c color.Color) {
	s.canvas.Rect(r.X(), r.Y(), r.Width(), r.Height(), fillAttr(c))
}

func (s *SVG) Stroke(width float64, c color.Color) {
	subpaths := s.Take()
	if len(subpaths) == 0 {
		return
	}
	s.canvas.Path(pathData(subpaths),
		`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, hexColor(c)),
		fmt.Sprintf(`stroke-width="%s"`, formatCoord(width)),
	)
}

func (s *SVG) TextExtents(text string) render.TextExtents {
	return fonts.Measure(s.face, text)
}

func (s *SVG) FillText(at geom.Point, text string, c color.Color) {
	s.canvas.Text(at.X, at.Y, text,
		fillAttr(c),
		fmt.Sprintf(`font-family="%s"`, fonts.FallbackFontFamily),
		fmt.Sprintf(`font-size="%s"`, formatCoord(s.fontSize)),
	)
}

// Bytes ends the document and returns it. Later drawing calls are invalid.
func (s *SVG) Bytes() []byte {
	if !s.done {
		s.canvas.End()
		s.done = true
	}
	return s.buf.Bytes()
}

// Close releases the font face.
func (s *SVG) Close() error {
	return s.face.Close()
}

func pathData(subpaths []geom.Path) string {
	var b strings.Builder
	for _, sp := range subpaths {
		for i, seg := range sp {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			// A subpath always opens with M, whatever its first command.
			if i == 0 {
				b.WriteString("M")
			} else {
				b.WriteString(seg.Op.String())
			}
			b.WriteString(formatCoord(seg.P.X))
			b.WriteByte(' ')
			b.WriteString(formatCoord(seg.P.Y))
		}
	}
	return b.String()
}

// formatCoord prints v with at most two decimals, like svgo's own output.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func fillAttr(c color.Color) string {
	return fmt.Sprintf(`fill="%s"`, hexColor(c))
}

func hexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
