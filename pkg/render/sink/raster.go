package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/fonts"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/render"
)

// miterLimit matches the common vector-graphics default of 10 line widths.
const miterLimit = 10

// RasterOption configures a [Raster].
type RasterOption func(*rasterConfig)

type rasterConfig struct {
	fontSize float64
}

// WithRasterFontSize sets the label font size in points.
func WithRasterFontSize(pt float64) RasterOption {
	return func(c *rasterConfig) { c.fontSize = pt }
}

// Raster is a bitmap Surface. Strokes are outlined with a rasterx Dasher and
// rectangles filled with a rasterx Filler sharing one scanner.
type Raster struct {
	render.PathBuilder

	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	face   font.Face
}

var _ render.Surface = (*Raster)(nil)

// NewRaster returns a transparent canvas of the given size, truncated to
// whole pixels.
func NewRaster(size geom.Size, opts ...RasterOption) (*Raster, error) {
	cfg := rasterConfig{fontSize: fonts.DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	w, h := int(size.W), int(size.H)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeRange, "raster size %s has no pixels", size)
	}
	face, err := fonts.NewFace(cfg.fontSize)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Raster{
		img:    img,
		filler: rasterx.NewFiller(w, h, scanner),
		dasher: rasterx.NewDasher(w, h, scanner),
		face:   face,
	}, nil
}

func (r *Raster) FillRect(rect geom.Rect, c color.Color) {
	r.filler.Clear()
	r.filler.SetColor(c)
	rasterx.AddRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, 0, r.filler)
	r.filler.Draw()
	r.filler.Clear()
}

// Stroke outlines the accumulated subpaths with butt caps and miter joins.
// The outline depends on the width, so subpaths are replayed here rather
// than streamed into the dasher as they are built.
func (r *Raster) Stroke(width float64, c color.Color) {
	subpaths := r.Take()
	if len(subpaths) == 0 {
		return
	}
	r.dasher.Clear()
	r.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(miterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		nil, 0,
	)
	r.dasher.SetColor(c)
	for _, sp := range subpaths {
		for i, seg := range sp {
			p := rasterx.ToFixedP(seg.P.X, seg.P.Y)
			if i == 0 {
				r.dasher.Start(p)
			} else {
				r.dasher.Line(p)
			}
		}
		r.dasher.Stop(false)
	}
	r.dasher.Draw()
	r.dasher.Clear()
}

func (r *Raster) TextExtents(s string) render.TextExtents {
	return fonts.Measure(r.face, s)
}

func (r *Raster) FillText(at geom.Point, s string, c color.Color) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(at.X * 64), Y: fixed.Int26_6(at.Y * 64)},
	}
	d.DrawString(s)
}

// Image returns the canvas.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// PNG encodes the canvas.
func (r *Raster) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Close releases the font face.
func (r *Raster) Close() error {
	return r.face.Close()
}
