package render

import (
	"image/color"

	"github.com/matzehuels/topo/pkg/geom"
)

// TextExtents are the ink bounds of a string relative to the pen position on
// its baseline. YBearing is negative for ink above the baseline.
type TextExtents struct {
	XBearing float64 `json:"x_bearing"`
	YBearing float64 `json:"y_bearing"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	XAdvance float64 `json:"x_advance"`
}

// Surface is a 2-D vector canvas.
//
// MoveTo starts a new subpath of the current path. LineTo without a current
// point behaves like MoveTo. Stroke draws every subpath of the current path
// as an open polyline and then clears it.
type Surface interface {
	FillRect(r geom.Rect, c color.Color)
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	Stroke(width float64, c color.Color)
	TextExtents(s string) TextExtents
	FillText(at geom.Point, s string, c color.Color)
}

// PathBuilder accumulates MoveTo/LineTo commands into subpaths. Surfaces
// that need the stroke width before they can outline a path embed it and
// replay the subpaths in Stroke.
type PathBuilder struct {
	subpaths []geom.Path
}

// MoveTo starts a new subpath at p.
func (b *PathBuilder) MoveTo(p geom.Point) {
	b.subpaths = append(b.subpaths, geom.Path{{Op: geom.MoveTo, P: p}})
}

// LineTo extends the current subpath to p, starting one if there is none.
func (b *PathBuilder) LineTo(p geom.Point) {
	if len(b.subpaths) == 0 {
		b.MoveTo(p)
		return
	}
	b.subpaths[len(b.subpaths)-1].LineTo(p)
}

// Take returns the accumulated subpaths and clears the builder.
func (b *PathBuilder) Take() []geom.Path {
	sp := b.subpaths
	b.subpaths = nil
	return sp
}
