// Package sink provides the concrete drawing surfaces and output encoders for
// postcards.
//
// # Overview
//
// A "sink" is a [render.Surface] that turns drawing commands into an output
// format:
//
//   - [Raster]: anti-aliased bitmap via rasterx, encoded as PNG
//   - [SVG]: vector document via svgo
//   - [RenderJSON]: the render plan and command summary as JSON
//
// Both surfaces measure the label with the embedded font from [fonts], so the
// label box has the same geometry in every format.
//
// # Raster Output
//
//	s, err := sink.NewRaster(geom.Size{W: 1600, H: 600})
//	plan, err := postcard.Render(s, ds, opts)
//	png, err := s.PNG()
//
// # SVG Output
//
//	s, err := sink.NewSVG(size, sink.WithEmbeddedFont())
//	plan, err := postcard.Render(s, ds, opts)
//	svg := s.Bytes()
//
// Surfaces are single use and not safe for concurrent use.
//
// [render.Surface]: github.com/matzehuels/topo/pkg/render
// [fonts]: github.com/matzehuels/topo/pkg/fonts
package sink
