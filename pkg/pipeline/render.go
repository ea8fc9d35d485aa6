package pipeline

import (
	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/fonts"
	"github.com/matzehuels/topo/pkg/postcard"
	"github.com/matzehuels/topo/pkg/render"
	"github.com/matzehuels/topo/pkg/render/sink"
)

// Render plans one postcard and draws it in every requested format, without
// caching.
func Render(ds *dataset.Dataset, opts Options) (postcard.Plan, map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return postcard.Plan{}, nil, err
	}
	plan, err := postcard.NewPlan(ds, opts.PostcardOptions())
	if err != nil {
		return postcard.Plan{}, nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(ds, plan, opts, format)
		if err != nil {
			return postcard.Plan{}, nil, err
		}
		artifacts[format] = data
	}
	return plan, artifacts, nil
}

// RenderFormat draws an already computed plan in a single format.
func RenderFormat(ds *dataset.Dataset, plan postcard.Plan, opts Options, format string) ([]byte, error) {
	popts := opts.PostcardOptions()

	switch format {
	case FormatPNG:
		r, err := sink.NewRaster(opts.Size, sink.WithRasterFontSize(opts.FontSize))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		postcard.Draw(r, ds, plan, popts)
		return r.PNG()

	case FormatSVG:
		svgOpts := []sink.SVGOption{sink.WithSVGFontSize(opts.FontSize)}
		if !opts.HideLocation {
			svgOpts = append(svgOpts, sink.WithTitle(plan.Label))
		}
		if opts.EmbedFont {
			svgOpts = append(svgOpts, sink.WithEmbeddedFont())
		}
		s, err := sink.NewSVG(opts.Size, svgOpts...)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		postcard.Draw(s, ds, plan, popts)
		return s.Bytes(), nil

	case FormatJSON:
		face, err := fonts.NewFace(opts.FontSize)
		if err != nil {
			return nil, err
		}
		defer face.Close()
		rec := render.NewRecorder(func(s string) render.TextExtents { return fonts.Measure(face, s) })
		postcard.Draw(rec, ds, plan, popts)
		return sink.RenderJSON(plan, sink.WithJSONSize(opts.Size), sink.WithJSONRecorder(rec))
	}
	return nil, ValidateFormat(format)
}
