// Package geom provides the plane geometry used by topo: points, sizes,
// rectangles, numeric ranges and straight-segment paths.
//
// All types are plain values. Parsing functions accept the textual forms used
// on the command line and in the dataset interchange format:
//
//	geom.ParseSize("1600x600")       // Size{W: 1600, H: 600}
//	geom.ParseSize("40")             // Size{W: 40, H: 40}
//	geom.ParseRange("1-8")           // Range{Start: 1, End: 8}
//	geom.ParsePath("M 0 0 L 10 5")   // two segments
//
// Malformed input fails with an error carrying [errors.ErrCodeParse].
//
// # Paths
//
// A [Path] is an ordered list of move-to and line-to segments. Curves are not
// supported. Paths can be transformed point-wise either into a new value
// ([Path.Transform]) or in place ([Path.TransformInPlace]) when the original
// is no longer needed.
//
// [errors.ErrCodeParse]: github.com/matzehuels/topo/pkg/errors
package geom
