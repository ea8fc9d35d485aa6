package postcard

import (
	"math"

	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/seed"
	"github.com/matzehuels/topo/pkg/theme"
)

// Label box geometry in pixels.
const (
	labelMargin  = 30
	labelPadding = 20
)

// Options configures a single render.
type Options struct {
	Seed           seed.Seed
	Size           geom.Size
	ScaleRange     geom.Range
	LineWidthRange geom.Range
	Theme          theme.Ref
	HideLocation   bool
}

// Validate reports configuration errors that would make the random draws
// empty or inverted. It consumes no randomness.
func (o Options) Validate(ds *dataset.Dataset) error {
	if !(o.Size.W > 0 && o.Size.H > 0) || math.IsInf(o.Size.W, 0) || math.IsInf(o.Size.H, 0) {
		return errors.New(errors.ErrCodeRange, "canvas size %s must be positive", o.Size)
	}
	if !ds.Size.Contains(o.Size) {
		return errors.New(errors.ErrCodeRange, "canvas %s is larger than dataset %s", o.Size, ds.Size)
	}
	if !o.ScaleRange.Valid() {
		return errors.New(errors.ErrCodeRange, "scale range %s is empty", o.ScaleRange)
	}
	if !o.LineWidthRange.Valid() {
		return errors.New(errors.ErrCodeRange, "line width range %s is empty", o.LineWidthRange)
	}
	return nil
}
