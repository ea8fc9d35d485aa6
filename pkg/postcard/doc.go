// Package postcard renders randomized crops of a contour dataset.
//
// # Overview
//
// A render is a pure function of a [dataset.Dataset] and [Options]. All
// randomness comes from one generator derived from Options.Seed and is
// consumed in a fixed order:
//
//  1. crop offset tx, then ty (one Float64 each)
//  2. scale factor (one Float64)
//  3. theme index (one IntN, skipped when the theme reference pins an index)
//  4. color order (one Uint64 coin flip)
//
// [NewPlan] performs these draws and returns a [Plan]; [Draw] issues the
// drawing commands for a plan to a [render.Surface]. [Render] does both.
//
//	ds, _ := dataset.ImportJSON("contours.json")
//	s, _ := sink.NewRaster(opts.Size)
//	plan, err := postcard.Render(s, ds, opts)
//
// Every configuration error (a canvas larger than the dataset, an empty scale
// or line width range, an unknown theme index) is reported before anything is
// drawn.
//
// [dataset.Dataset]: github.com/matzehuels/topo/pkg/dataset
// [render.Surface]: github.com/matzehuels/topo/pkg/render
package postcard
