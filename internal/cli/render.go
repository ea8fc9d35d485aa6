package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/geom"
	"github.com/matzehuels/topo/pkg/pipeline"
	"github.com/matzehuels/topo/pkg/seed"
	"github.com/matzehuels/topo/pkg/theme"
)

// renderFlags holds the flags shared by render and render-many.
type renderFlags struct {
	seed           seed.Seed
	size           geom.Size
	scaleRange     geom.Range
	lineWidthRange geom.Range
	theme          theme.Ref
	hideLocation   bool
	formats        string // comma-separated; empty infers from the output path
	fontSize       float64
	embedFont      bool
	noCache        bool
	refresh        bool
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.Var(&f.size, "size", "postcard size in pixels (WxH)")
	fs.Var(&f.scaleRange, "scale-range", "zoom range to draw from (lo-hi)")
	fs.Var(&f.lineWidthRange, "line-width-range", "stroke width range mapped onto the scale range (lo-hi)")
	fs.Var(&f.theme, "theme", "theme file, optionally pinned to a theme (path or path:index)")
	fs.BoolVar(&f.hideLocation, "hide-location", false, "omit the coordinate label")
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): png, svg, json (comma-separated)")
	fs.Float64Var(&f.fontSize, "font-size", f.fontSize, "label font size in points")
	fs.BoolVar(&f.embedFont, "embed-font", false, "embed the label font in SVG output")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	fs.BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
}

// options converts the flags into pipeline options for the dataset at src.
func (f *renderFlags) options(src string, formats []string) pipeline.Options {
	return pipeline.Options{
		Dataset:        src,
		Seed:           f.seed,
		Size:           f.size,
		ScaleRange:     f.scaleRange,
		LineWidthRange: f.lineWidthRange,
		Theme:          f.theme,
		HideLocation:   f.hideLocation,
		Formats:        formats,
		FontSize:       f.fontSize,
		EmbedFont:      f.embedFont,
		Refresh:        f.refresh,
	}
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	flags := defaultRenderFlags()
	flags.seed = seed.Default()

	cmd := &cobra.Command{
		Use:   "render <dataset.json> <output>",
		Short: "Render one postcard",
		Long: `Render one postcard from a contour dataset.

The crop, zoom, theme and colors are drawn from --seed; the same seed always
produces the same postcard. The output format follows the file extension
unless --format is given. With several formats the extension is replaced
for each one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.config.applyRender(cmd.Flags(), &flags); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], args[1], &flags)
		},
	}

	cmd.Flags().Var(&flags.seed, "seed", "random seed in hex (default: time based)")
	flags.register(cmd.Flags())
	return cmd
}

func (c *CLI) runRender(ctx context.Context, src, dst string, flags *renderFlags) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(dst); err != nil {
		return err
	}
	formats := outputFormats(flags.formats, dst)

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, flags.options(src, formats))
	if err != nil {
		return err
	}

	for _, format := range formats {
		path := dst
		if len(formats) > 1 {
			path = basePath(dst) + "." + format
		}
		if err := writeOutput(path, res.Artifacts[format]); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
	}
	fmt.Fprintln(c.stdout, res.Plan.Summary())
	prog.done("Rendered postcard")
	return nil
}

// outputFormats returns the formats to render: the explicit list if given,
// otherwise the output extension, otherwise PNG.
func outputFormats(explicit, dst string) []string {
	if explicit != "" {
		return pipeline.ParseFormats(explicit)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(dst), "."))
	if pipeline.ValidFormats[ext] {
		return []string{ext}
	}
	return []string{pipeline.FormatPNG}
}

// basePath strips a known format extension from path.
func basePath(path string) string {
	ext := filepath.Ext(path)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
