package postcard

import (
	"fmt"

	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/geo"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/seed"
	"github.com/matzehuels/topo/pkg/theme"
)

// Plan holds every random choice of one render.
type Plan struct {
	Seed       seed.Seed   `json:"seed"`
	Offset     geom.Point  `json:"offset"`
	Scale      float64     `json:"scale"`
	ThemeIndex int         `json:"theme"`
	Background theme.Color `json:"background"`
	Foreground theme.Color `json:"foreground"`
	LineWidth  float64     `json:"line_width"`
	Location   geo.LatLng  `json:"location"`
	Label      string      `json:"label"`
}

// NewPlan draws the crop, scale, theme and colors for a render of ds.
func NewPlan(ds *dataset.Dataset, opts Options) (Plan, error) {
	rng := opts.Seed.Rand()

	if err := opts.Validate(ds); err != nil {
		return Plan{}, err
	}
	tx, err := seed.Uniform(rng, 0, ds.Size.W-opts.Size.W)
	if err != nil {
		return Plan{}, err
	}
	ty, err := seed.Uniform(rng, 0, ds.Size.H-opts.Size.H)
	if err != nil {
		return Plan{}, err
	}
	scale, err := seed.Uniform(rng, opts.ScaleRange.Start, opts.ScaleRange.End)
	if err != nil {
		return Plan{}, err
	}
	idx, palette, err := opts.Theme.Pick(rng)
	if err != nil {
		return Plan{}, err
	}
	bg, fg := theme.SelectPair(rng, palette)

	loc := ds.Region.At(tx/ds.Size.W, ty/ds.Size.H)
	return Plan{
		Seed:       opts.Seed,
		Offset:     geom.Pt(tx, ty),
		Scale:      scale,
		ThemeIndex: idx,
		Background: bg,
		Foreground: fg,
		LineWidth:  geo.Lerp(opts.LineWidthRange, geo.InvLerp(opts.ScaleRange, scale)),
		Location:   loc,
		Label:      loc.DMS(),
	}, nil
}

// Project maps a dataset point into canvas coordinates.
func (p Plan) Project(q geom.Point) geom.Point {
	return q.Sub(p.Offset).Mul(p.Scale)
}

// Summary returns a one-line description of the plan.
func (p Plan) Summary() string {
	return fmt.Sprintf("theme = %d, origin = (%.2f, %.2f), scale = %.2f, seed = %s",
		p.ThemeIndex, p.Offset.X, p.Offset.Y, p.Scale, p.Seed)
}
