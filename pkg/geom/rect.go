package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/topo/pkg/errors"
)

// Rect is an axis-aligned box spanning Min (top-left) to Max (bottom-right).
type Rect struct {
	Min, Max Point
}

// RectXYWH returns the rectangle with top-left (x, y) and the given size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// EmptyRect returns the identity of Extend: (+∞,+∞)-(−∞,−∞).
func EmptyRect() Rect {
	inf := math.Inf(1)
	return Rect{Min: Pt(inf, inf), Max: Pt(-inf, -inf)}
}

// ParseRect parses an SVG viewBox value: "x y w h", separated by whitespace
// and/or commas.
func ParseRect(s string) (Rect, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	names := [4]string{"x", "y", "w", "h"}
	var v [4]float64
	for i, name := range names {
		if i >= len(fields) {
			return Rect{}, errors.New(errors.ErrCodeParse, "invalid rect %q: no %s", s, name)
		}
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Rect{}, errors.Wrap(errors.ErrCodeParse, err, "invalid rect %q: bad %s", s, name)
		}
		v[i] = f
	}
	if len(fields) > 4 {
		return Rect{}, errors.New(errors.ErrCodeParse, "invalid rect %q: trailing values", s)
	}
	return RectXYWH(v[0], v[1], v[2], v[3]), nil
}

// X returns the left edge of r.
func (r Rect) X() float64 { return r.Min.X }

// Y returns the top edge of r.
func (r Rect) Y() float64 { return r.Min.Y }

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height of r.
func (r Rect) Size() Size {
	return Size{W: r.Width(), H: r.Height()}
}

// Empty reports whether r contains no points, which is the case for the
// bounds of an empty path.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Intersects reports whether r and o overlap with positive area. Rectangles
// that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X &&
		r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y &&
		r.Max.Y > o.Min.Y
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		Min: Pt(math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)),
		Max: Pt(math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)),
	}
}
