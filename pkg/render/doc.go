// Package render defines the drawing surface postcards are rendered onto.
//
// # Overview
//
// The render pipeline never touches pixels or file formats. It issues a short
// list of vector commands to a [Surface]:
//
//   - FillRect: solid rectangle (background, label box)
//   - MoveTo / LineTo: build the current path
//   - Stroke: stroke the current path as open polylines, then clear it
//   - TextExtents / FillText: measure and place the location label
//
// Concrete surfaces live in the [sink] subpackage: a raster surface that
// encodes PNG and an SVG surface. A [Recorder] captures the command stream
// for tests and for the JSON plan output.
//
//	s, err := sink.NewRaster(geom.Size{W: 1600, H: 600})
//	if err != nil {
//	    return err
//	}
//	if _, err := postcard.Render(s, ds, opts); err != nil {
//	    return err
//	}
//	png, err := s.PNG()
//
// [sink]: github.com/matzehuels/topo/pkg/render/sink
package render
