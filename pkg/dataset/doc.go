// Package dataset provides JSON import and export for contour datasets.
//
// A dataset is the output of the extract stage and the input of every render:
// the size of the source canvas, the geographic region it covers, and its
// contour paths with coordinates normalized to the canvas origin.
//
// # JSON Format
//
//	{
//	  "size": {"w": 1000, "h": 1000},
//	  "region": {
//	    "nw": "35°38′47″N 080°03′00″W",
//	    "se": "35°29′20″N 079°51′00″W"
//	  },
//	  "paths": [
//	    "M 0 0 L 10 5 L 20 0",
//	    "M 40 40 L 41 42"
//	  ]
//	}
//
// Coordinates in "region" use the DMS form of [geo.LatLng]; paths use the
// "CMD x y" token stream of [geom.Path]. Decoding then re-encoding a
// well-formed dataset reproduces it exactly.
//
// # Import
//
// Use [ImportJSON] to read a dataset from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	ds, err := dataset.ImportJSON("contours.json")
//
// # Export
//
// Use [ExportJSON] to write a dataset to a file, or [WriteJSON] to write to
// any io.Writer.
//
// Datasets are never modified by rendering, so one decoded value can back any
// number of renders.
//
// [geo.LatLng]: github.com/matzehuels/topo/pkg/geo
// [geom.Path]: github.com/matzehuels/topo/pkg/geom
package dataset
