// Package extract pulls contour paths out of an SVG topographic chart and
// produces a normalized [dataset.Dataset].
//
// Only <path> elements whose stroke, fill and stroke-width attributes match a
// [Filter] are kept. Coordinates are shifted so the viewBox origin becomes
// (0, 0), and the dataset size is the viewBox size.
//
// [dataset.Dataset]: github.com/matzehuels/topo/pkg/dataset
package extract

import (
	"encoding/xml"
	"io"

	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/geo"
	"github.com/matzehuels/topo/pkg/geom"
)

// DefaultEpsilon is the distance below which consecutive points are merged.
const DefaultEpsilon = 0.0001

// Filter selects contour paths by exact attribute values. An empty field
// matches any value, including a missing attribute.
type Filter struct {
	Stroke      string
	Fill        string
	StrokeWidth string
}

// DefaultFilter matches the thin gray contour lines of the USGS-style charts
// the tool was built for.
var DefaultFilter = Filter{
	Stroke:      "rgb(69.802856%, 69.802856%, 69.802856%)",
	Fill:        "none",
	StrokeWidth: "0.99001",
}

// Match reports whether a path element with attrs passes the filter.
func (f Filter) Match(attrs []xml.Attr) bool {
	want := map[string]string{"stroke": f.Stroke, "fill": f.Fill, "stroke-width": f.StrokeWidth}
	for name, v := range want {
		if v == "" {
			continue
		}
		got, ok := attr(attrs, name)
		if !ok || got != v {
			return false
		}
	}
	return true
}

// Options configures extraction.
type Options struct {
	Filter  Filter
	Region  geo.Rect
	Epsilon float64
}

// Stats summarizes an extraction.
type Stats struct {
	Elements int // <path> elements seen
	Matched  int // elements passing the filter
	Dropped  int // points merged into their predecessor
}

// Read extracts a dataset from the SVG document in r.
func Read(r io.Reader, opts Options) (*dataset.Dataset, Stats, error) {
	var (
		stats   Stats
		viewBox geom.Rect
		haveBox bool
		paths   []geom.Path
	)

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, errors.Wrap(errors.ErrCodeParse, err, "read svg")
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch el.Name.Local {
		case "svg":
			if haveBox {
				continue
			}
			vb, ok := attr(el.Attr, "viewBox")
			if !ok {
				return nil, stats, errors.New(errors.ErrCodeParse, "svg root has no viewBox")
			}
			if viewBox, err = geom.ParseRect(vb); err != nil {
				return nil, stats, err
			}
			haveBox = true
		case "path":
			stats.Elements++
			if !opts.Filter.Match(el.Attr) {
				continue
			}
			stats.Matched++
			d, _ := attr(el.Attr, "d")
			p, err := geom.ParsePath(d)
			if err != nil {
				return nil, stats, errors.Wrap(errors.ErrCodeParse, err, "contour path %d", stats.Matched)
			}
			deduped := p.Dedupe(opts.Epsilon)
			stats.Dropped += len(p) - len(deduped)
			paths = append(paths, deduped)
		}
	}
	if !haveBox {
		return nil, stats, errors.New(errors.ErrCodeParse, "no svg root element")
	}

	origin := viewBox.Min
	for _, p := range paths {
		p.TransformInPlace(func(q geom.Point) geom.Point { return q.Sub(origin) })
	}
	ds := &dataset.Dataset{
		Size:   viewBox.Size(),
		Region: opts.Region,
		Paths:  paths,
	}
	if err := ds.Validate(); err != nil {
		return nil, stats, err
	}
	return ds, stats, nil
}

func attr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}
