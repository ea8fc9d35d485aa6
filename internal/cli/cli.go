// Package cli implements the topo command-line interface.
//
// topo turns a contour dataset into randomized topographic postcards. The
// commands are:
//   - render: render one postcard
//   - render-many: render a batch of postcards into a directory
//   - extract: convert an SVG contour chart into a dataset
//   - themes: list or interactively pick palettes from a theme file
//   - cache: manage the artifact cache
//
// Defaults come from built-in values, then from an optional TOML config file,
// then from flags. All commands support --verbose (-v) for debug logging; the
// logger travels through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/topo/pkg/buildinfo"
	"github.com/matzehuels/topo/pkg/cache"
	"github.com/matzehuels/topo/pkg/observability"
	"github.com/matzehuels/topo/pkg/pipeline"
)

// appName is used for config and cache directories.
const appName = "topo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *Config
	stdout     io.Writer
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: &Config{},
		stdout: os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "topo renders randomized topographic postcards",
		Long:         `topo crops, zooms and colors contour maps into postcard-sized PNG, SVG or JSON renders. Every render is reproducible from its seed.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
			observability.SetCacheHooks(observability.NewLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/topo/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.renderManyCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache || c.config.NoCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, cacheKeyer(), c.Logger), nil
}

// cacheKeyer scopes cache keys by release, so a new renderer never serves
// artifacts drawn by an older one.
func cacheKeyer() cache.Keyer {
	return cache.NewScopedKeyer(nil, buildinfo.Version+":")
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory ($XDG_CACHE_HOME/topo or ~/.cache/topo).
func cacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory ($XDG_CONFIG_HOME/topo or ~/.config/topo).
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
