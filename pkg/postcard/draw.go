package postcard

import (
	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/render"
)

// Draw issues the drawing commands for p onto s: the background, one stroke
// pass over every visible contour and, unless hidden, the location label.
// ds is not modified.
func Draw(s render.Surface, ds *dataset.Dataset, p Plan, opts Options) {
	w, h := opts.Size.W, opts.Size.H
	s.FillRect(geom.RectXYWH(0, 0, w, h), p.Background)

	lw := p.LineWidth
	view := geom.RectXYWH(-lw, -lw, w+2*lw, h+2*lw)
	var scratch geom.Path
	for _, path := range ds.Paths {
		scratch = append(scratch[:0], path...)
		scratch.TransformInPlace(p.Project)
		if b := scratch.Bounds(); b.Empty() || !view.Intersects(b) {
			continue
		}
		// Each contour starts its own subpath, even one that opens with L.
		for i, seg := range scratch {
			if i == 0 || seg.Op == geom.MoveTo {
				s.MoveTo(seg.P)
			} else {
				s.LineTo(seg.P)
			}
		}
	}
	s.Stroke(lw, p.Foreground)

	if opts.HideLocation {
		return
	}
	ext := s.TextExtents(p.Label)
	s.FillRect(geom.RectXYWH(
		w-ext.Width-labelMargin,
		h+ext.YBearing-labelMargin,
		ext.Width+labelPadding,
		ext.Height+labelPadding,
	), p.Background)
	s.FillText(geom.Pt(w-ext.Width-labelPadding, h-labelPadding), p.Label, p.Foreground)
}

// Render plans and draws one postcard. Nothing is drawn if planning fails.
func Render(s render.Surface, ds *dataset.Dataset, opts Options) (Plan, error) {
	p, err := NewPlan(ds, opts)
	if err != nil {
		return Plan{}, err
	}
	Draw(s, ds, p, opts)
	return p, nil
}
