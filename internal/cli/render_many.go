package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/pipeline"
	"github.com/matzehuels/topo/pkg/seed"
)

// renderManyCommand creates the render-many command.
func (c *CLI) renderManyCommand() *cobra.Command {
	flags := defaultRenderFlags()
	flags.seed = seed.Default()
	var n int

	cmd := &cobra.Command{
		Use:   "render-many <dataset.json> <dir>",
		Short: "Render a batch of postcards into a directory",
		Long: `Render n postcards into a directory, one file per postcard and format,
named after the postcard's seed (for example 3f9a0c1d22e4b7a1.png).

Postcard seeds are drawn from --seed, so a batch can be reproduced as a whole.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.config.applyRender(cmd.Flags(), &flags); err != nil {
				return err
			}
			if c.config.Count > 0 && !cmd.Flags().Changed("n") {
				n = c.config.Count
			}
			return c.runRenderMany(cmd.Context(), args[0], args[1], n, &flags)
		},
	}

	cmd.Flags().Var(&flags.seed, "seed", "batch seed in hex (default: time based)")
	cmd.Flags().IntVar(&n, "n", pipeline.DefaultBatchCount, "number of postcards")
	flags.register(cmd.Flags())
	return cmd
}

func (c *CLI) runRenderMany(ctx context.Context, src, dir string, n int, flags *renderFlags) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateCount(n); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
	}
	formats := []string{pipeline.FormatPNG}
	if flags.formats != "" {
		formats = pipeline.ParseFormats(flags.formats)
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger.Infof("Rendering %d postcards from batch seed %s", n, flags.seed)
	prog := newProgress(logger)
	done := 0
	err = runner.RenderMany(ctx, flags.options(src, formats), n, func(res *pipeline.Result) error {
		for _, format := range formats {
			path := filepath.Join(dir, res.Plan.Seed.String()+"."+format)
			if err := writeOutput(path, res.Artifacts[format]); err != nil {
				return err
			}
			logger.Debugf("Generated %s", path)
		}
		fmt.Fprintln(c.stdout, res.Plan.Summary())
		done++
		return nil
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d postcards into %s", done, dir))
	return nil
}
