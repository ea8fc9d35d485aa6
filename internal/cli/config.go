package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/extract"
	"github.com/matzehuels/topo/pkg/geo"
	"github.com/matzehuels/topo/pkg/pipeline"
)

// Config holds defaults read from the TOML config file. Flags given on the
// command line take precedence over every field.
//
//	size = "1600x600"
//	scale_range = "1-8"
//	line_width_range = "2-4"
//	theme = "~/maps/themes.bin"
//	formats = ["png", "svg"]
//
//	[extract]
//	epsilon = 0.0001
type Config struct {
	Size           string   `toml:"size"`
	ScaleRange     string   `toml:"scale_range"`
	LineWidthRange string   `toml:"line_width_range"`
	Theme          string   `toml:"theme"`
	HideLocation   bool     `toml:"hide_location"`
	Formats        []string `toml:"formats"`
	FontSize       float64  `toml:"font_size"`
	EmbedFont      bool     `toml:"embed_font"`
	NoCache        bool     `toml:"no_cache"`
	Count          int      `toml:"count"`

	Extract ExtractConfig `toml:"extract"`
}

// ExtractConfig holds defaults for the extract command. Nil filter fields
// keep the built-in contour filter; an empty string matches any value.
type ExtractConfig struct {
	Stroke      *string `toml:"stroke"`
	Fill        *string `toml:"fill"`
	StrokeWidth *string `toml:"stroke_width"`
	Epsilon     float64 `toml:"epsilon"`
	NW          string  `toml:"nw"`
	SE          string  `toml:"se"`
}

// loadConfig reads the config file at path. With an empty path the default
// location is tried and a missing file yields an empty config.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "read config")
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// applyRender copies config values into f for every flag the user did not set.
func (cfg *Config) applyRender(flags *pflag.FlagSet, f *renderFlags) error {
	set := func(name, value string, v pflag.Value) error {
		if value == "" || flags.Changed(name) {
			return nil
		}
		if err := v.Set(value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", strings.ReplaceAll(name, "-", "_"))
		}
		return nil
	}
	if err := set("size", cfg.Size, &f.size); err != nil {
		return err
	}
	if err := set("scale-range", cfg.ScaleRange, &f.scaleRange); err != nil {
		return err
	}
	if err := set("line-width-range", cfg.LineWidthRange, &f.lineWidthRange); err != nil {
		return err
	}
	if err := set("theme", cfg.Theme, &f.theme); err != nil {
		return err
	}

	if cfg.HideLocation && !flags.Changed("hide-location") {
		f.hideLocation = true
	}
	if len(cfg.Formats) > 0 && !flags.Changed("format") {
		f.formats = strings.Join(cfg.Formats, ",")
	}
	if cfg.FontSize != 0 && !flags.Changed("font-size") {
		f.fontSize = cfg.FontSize
	}
	if cfg.EmbedFont && !flags.Changed("embed-font") {
		f.embedFont = true
	}
	return nil
}

// applyExtract copies config values into f for every flag the user did not set.
func (cfg *Config) applyExtract(flags *pflag.FlagSet, f *extractFlags) error {
	e := cfg.Extract
	str := func(name string, src *string, dst *string) {
		if src != nil && !flags.Changed(name) {
			*dst = *src
		}
	}
	str("stroke", e.Stroke, &f.filter.Stroke)
	str("fill", e.Fill, &f.filter.Fill)
	str("stroke-width", e.StrokeWidth, &f.filter.StrokeWidth)
	if e.Epsilon != 0 && !flags.Changed("epsilon") {
		f.epsilon = e.Epsilon
	}
	for _, c := range []struct {
		name, value string
		dst         *geo.LatLng
	}{
		{"nw", e.NW, &f.region.NW},
		{"se", e.SE, &f.region.SE},
	} {
		if c.value == "" || flags.Changed(c.name) {
			continue
		}
		if err := c.dst.Set(c.value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "config extract.%s", c.name)
		}
	}
	return nil
}

// defaultRenderFlags returns the built-in render defaults.
func defaultRenderFlags() renderFlags {
	d := pipeline.DefaultOptions()
	return renderFlags{
		size:           d.Size,
		scaleRange:     d.ScaleRange,
		lineWidthRange: d.LineWidthRange,
		theme:          d.Theme,
		fontSize:       d.FontSize,
	}
}

// defaultExtractFlags returns the built-in extract defaults.
func defaultExtractFlags() extractFlags {
	return extractFlags{
		filter:  extract.DefaultFilter,
		epsilon: extract.DefaultEpsilon,
	}
}
