package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/extract"
	"github.com/matzehuels/topo/pkg/geo"
)

type extractFlags struct {
	filter  extract.Filter
	region  geo.Rect
	epsilon float64
	noCache bool
	refresh bool
}

// extractCommand creates the extract command.
func (c *CLI) extractCommand() *cobra.Command {
	flags := defaultExtractFlags()

	cmd := &cobra.Command{
		Use:   "extract <chart.svg> <dataset.json>",
		Short: "Convert an SVG contour chart into a dataset",
		Long: `Extract contour lines from an SVG chart into a dataset.

Only <path> elements whose stroke, fill and stroke-width attributes match the
filter are kept; pass an empty value to match anything. Coordinates are
shifted so the viewBox starts at the origin. --nw and --se give the
geographic corners of the chart, in DMS (35°38′47″N 080°02′59″W) or decimal
("35.6464,-80.0499") form.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.config.applyExtract(cmd.Flags(), &flags); err != nil {
				return err
			}
			return c.runExtract(cmd.Context(), args[0], args[1], &flags)
		},
	}

	cmd.Flags().StringVar(&flags.filter.Stroke, "stroke", flags.filter.Stroke, "stroke attribute of contour paths")
	cmd.Flags().StringVar(&flags.filter.Fill, "fill", flags.filter.Fill, "fill attribute of contour paths")
	cmd.Flags().StringVar(&flags.filter.StrokeWidth, "stroke-width", flags.filter.StrokeWidth, "stroke-width attribute of contour paths")
	cmd.Flags().Var(&flags.region.NW, "nw", "north-west corner of the chart")
	cmd.Flags().Var(&flags.region.SE, "se", "south-east corner of the chart")
	cmd.Flags().Float64Var(&flags.epsilon, "epsilon", flags.epsilon, "merge consecutive points closer than this")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the dataset cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-extract even when cached")
	return cmd
}

func (c *CLI) runExtract(ctx context.Context, src, dst string, flags *extractFlags) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(dst); err != nil {
		return err
	}
	if flags.epsilon < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "epsilon must not be negative, got %g", flags.epsilon)
	}
	if flags.region == (geo.Rect{}) {
		logger.Warn("no --nw/--se given; location labels will read 00°00′00″N 000°00′00″E")
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, "Extracting contours from "+src)
	spin.Start()
	res, err := runner.Extract(ctx, src, extract.Options{
		Filter:  flags.filter,
		Region:  flags.region,
		Epsilon: flags.epsilon,
	}, flags.refresh)
	if err != nil {
		spin.StopWithError("Extraction failed")
		return err
	}
	if err := dataset.ExportJSON(res.Dataset, dst); err != nil {
		spin.StopWithError("Write failed")
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Extracted %d contours", len(res.Dataset.Paths)))

	printKeyValue("size", res.Dataset.Size.String())
	printKeyValue("segments", fmt.Sprint(res.Dataset.Segments()))
	if res.CacheHit {
		printKeyValue("source", styleCached.Render(iconCached))
	} else {
		printKeyValue("matched", fmt.Sprintf("%d of %d paths", res.Stats.Matched, res.Stats.Elements))
		printKeyValue("merged", fmt.Sprintf("%d points", res.Stats.Dropped))
	}
	printFile(dst)
	return nil
}
