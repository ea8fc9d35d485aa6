// Package pipeline runs the load → plan → render pipeline for topo.
//
// The CLI drives everything through a [Runner], which owns the artifact cache
// and the logger. A render is a pure function of the dataset, the theme file
// and the [Options], so every artifact is cached under a key derived from
// those three inputs.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Dataset = "nc.json"
//	opts.Seed = seed.New(1)
//	res, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	png := res.Artifacts[pipeline.FormatPNG]
//
// Batches draw one seed per postcard from a batch seed:
//
//	err := runner.RenderMany(ctx, opts, 10, func(res *pipeline.Result) error {
//	    return os.WriteFile(res.Plan.Seed.String()+".png", res.Artifacts["png"], 0o644)
//	})
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/topo/pkg/cache"
	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/fonts"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/postcard"
	"github.com/matzehuels/topo/pkg/seed"
	"github.com/matzehuels/topo/pkg/theme"
)

// Defaults shared by the CLI and the config file.
const (
	DefaultWidth      = 1600.0
	DefaultHeight     = 600.0
	DefaultTheme      = "themes.bin"
	DefaultBatchCount = 10
)

var (
	// DefaultScaleRange is the zoom range drawn from for each postcard.
	DefaultScaleRange = geom.Range{Start: 1, End: 8}

	// DefaultLineWidthRange is mapped onto the scale range.
	DefaultLineWidthRange = geom.Range{Start: 2, End: 4}
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// Options configures one render. It mirrors [postcard.Options] and adds the
// output concerns.
type Options struct {
	Dataset        string     `json:"dataset,omitempty"`
	Seed           seed.Seed  `json:"seed"`
	Size           geom.Size  `json:"size"`
	ScaleRange     geom.Range `json:"scale_range"`
	LineWidthRange geom.Range `json:"line_width_range"`
	Theme          theme.Ref  `json:"theme"`
	HideLocation   bool       `json:"hide_location,omitempty"`

	Formats   []string `json:"formats,omitempty"`
	FontSize  float64  `json:"font_size,omitempty"`
	EmbedFont bool     `json:"embed_font,omitempty"` // inline the label font in SVG output
	Refresh   bool     `json:"refresh,omitempty"`    // ignore cached artifacts
}

// Result is the output of one render.
type Result struct {
	Plan      postcard.Plan
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timings and sizes of a render.
type Stats struct {
	Paths      int
	Segments   int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo reports which outputs came from the cache.
type CacheInfo struct {
	RenderHit bool // every requested format was cached
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates. An empty string yields PNG only.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []string{FormatPNG}
	}
	return out
}

// DefaultOptions returns options holding the built-in render defaults. The
// seed is zero and no dataset is set.
func DefaultOptions() Options {
	return Options{
		Size:           geom.Size{W: DefaultWidth, H: DefaultHeight},
		ScaleRange:     DefaultScaleRange,
		LineWidthRange: DefaultLineWidthRange,
		Theme:          theme.Ref{Path: DefaultTheme},
		Formats:        []string{FormatPNG},
		FontSize:       fonts.DefaultSize,
	}
}

// ValidateForRender checks the output settings. An empty format list means
// PNG. Zero or empty sizes and ranges are not replaced by defaults; the
// planner rejects them with a range error.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidateFontSize(o.FontSize)
}

// PostcardOptions returns the render-core subset of o.
func (o *Options) PostcardOptions() postcard.Options {
	return postcard.Options{
		Seed:           o.Seed,
		Size:           o.Size,
		ScaleRange:     o.ScaleRange,
		LineWidthRange: o.LineWidthRange,
		Theme:          o.Theme,
		HideLocation:   o.HideLocation,
	}
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format, themeHash string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:         format,
		Seed:           o.Seed,
		Width:          o.Size.W,
		Height:         o.Size.H,
		ScaleRange:     o.ScaleRange.String(),
		LineWidthRange: o.LineWidthRange.String(),
		Theme:          o.Theme.String(),
		ThemeHash:      themeHash,
		HideLocation:   o.HideLocation,
	}
	if format != FormatJSON {
		k.FontSize = o.FontSize
	}
	if format == FormatSVG && o.EmbedFont {
		k.Format = "svg+font"
	}
	return k
}
