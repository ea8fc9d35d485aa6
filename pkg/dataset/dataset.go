package dataset

import (
	"math"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/geo"
	"github.com/matzehuels/topo/pkg/geom"
)

// Dataset is a normalized contour map.
type Dataset struct {
	Size   geom.Size   `json:"size"`
	Region geo.Rect    `json:"region"`
	Paths  []geom.Path `json:"paths"`
}

// Validate checks that the canvas size is usable.
func (d *Dataset) Validate() error {
	for _, v := range []float64{d.Size.W, d.Size.H} {
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return errors.New(errors.ErrCodeFormat, "dataset size %s must be positive and finite", d.Size)
		}
	}
	return nil
}

// Segments returns the total number of segments over all paths.
func (d *Dataset) Segments() int {
	n := 0
	for _, p := range d.Paths {
		n += len(p)
	}
	return n
}
