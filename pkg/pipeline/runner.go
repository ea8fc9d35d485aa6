package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/topo/pkg/cache"
	"github.com/matzehuels/topo/pkg/dataset"
	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/extract"
	"github.com/matzehuels/topo/pkg/observability"
	"github.com/matzehuels/topo/pkg/postcard"
)

// Runner executes renders with artifact caching.
//
// A Runner holds no per-render state; it may be shared by sequential callers.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// cache.DefaultKeyer and a nil logger uses log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Source is a loaded dataset together with the content hashes that key its
// artifacts.
type Source struct {
	Dataset   *dataset.Dataset
	Hash      string
	ThemeHash string
	LoadTime  time.Duration
}

// Load reads the dataset named by opts.Dataset and hashes the theme file.
func (r *Runner) Load(ctx context.Context, opts Options) (*Source, error) {
	if opts.Dataset == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dataset path is required")
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Dataset)
	start := time.Now()

	src, err := r.load(opts)
	elapsed := time.Since(start)
	n := 0
	if src != nil {
		src.LoadTime = elapsed
		n = len(src.Dataset.Paths)
	}
	hooks.OnLoadComplete(ctx, opts.Dataset, n, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("loaded dataset",
		"path", opts.Dataset,
		"size", src.Dataset.Size,
		"paths", n,
		"duration", elapsed)
	return src, nil
}

func (r *Runner) load(opts Options) (*Source, error) {
	raw, err := os.ReadFile(opts.Dataset)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read dataset %s", opts.Dataset)
	}
	ds, err := dataset.ReadJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	src := &Source{Dataset: ds, Hash: cache.Hash(raw)}

	// An unreadable theme file is reported by the planner with its own error.
	if themes, err := os.ReadFile(opts.Theme.Path); err == nil {
		src.ThemeHash = cache.Hash(themes)
	}
	return src, nil
}

// Execute loads the dataset and renders one postcard.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	src, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	res, err := r.RenderSource(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.LoadTime = src.LoadTime
	return res, nil
}

// RenderSource renders one postcard from an already loaded source, serving
// each format from the cache when possible.
func (r *Runner) RenderSource(ctx context.Context, src *Source, opts Options) (*Result, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Seed.String(), opts.Formats)
	start := time.Now()
	res, err := r.renderSource(ctx, src, opts)
	elapsed := time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Seed.String(), opts.Formats, elapsed, err)
	if err != nil {
		return nil, err
	}

	res.Stats.RenderTime = elapsed
	r.Logger.Info("rendered postcard",
		"seed", res.Plan.Seed,
		"theme", res.Plan.ThemeIndex,
		"formats", opts.Formats,
		"cached", res.CacheInfo.RenderHit,
		"duration", elapsed)
	return res, nil
}

func (r *Runner) renderSource(ctx context.Context, src *Source, opts Options) (*Result, error) {
	ds := src.Dataset

	// Planning is cheap and deterministic, so it always runs; only drawing
	// is skipped on a cache hit.
	plan, err := postcard.NewPlan(ds, opts.PostcardOptions())
	if err != nil {
		return nil, err
	}

	res := &Result{
		Plan:      plan,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats:     Stats{Paths: len(ds.Paths), Segments: ds.Segments()},
		CacheInfo: CacheInfo{RenderHit: true},
	}
	cacheHooks := observability.Cache()

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(src.Hash, opts.ArtifactKeyOpts(format, src.ThemeHash))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				cacheHooks.OnCacheHit(ctx, cache.KeyTypeArtifact)
				res.Artifacts[format] = data
				continue
			}
		}
		cacheHooks.OnCacheMiss(ctx, cache.KeyTypeArtifact)
		res.CacheInfo.RenderHit = false

		data, err := RenderFormat(ds, plan, opts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		res.Artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, cache.KeyTypeArtifact, len(data))
		}
	}
	return res, nil
}

// RenderMany renders n postcards whose seeds are drawn from opts.Seed, calling
// emit after each one. Renders run sequentially; a cancelled ctx stops the
// batch between renders.
func (r *Runner) RenderMany(ctx context.Context, opts Options, n int, emit func(*Result) error) error {
	if err := errors.ValidateCount(n); err != nil {
		return err
	}
	if err := opts.ValidateForRender(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	src, err := r.Load(ctx, opts)
	if err != nil {
		return err
	}

	for i, s := range opts.Seed.Batch(n) {
		if err := ctx.Err(); err != nil {
			return err
		}
		one := opts
		one.Seed = s
		res, err := r.RenderSource(ctx, src, one)
		if err != nil {
			return fmt.Errorf("postcard %d (seed %s): %w", i+1, s, err)
		}
		res.Stats.LoadTime = src.LoadTime
		if err := emit(res); err != nil {
			return err
		}
	}
	return nil
}

// ExtractResult is the output of [Runner.Extract].
type ExtractResult struct {
	Dataset  *dataset.Dataset
	Stats    extract.Stats
	CacheHit bool
}

// Extract converts the SVG chart at path into a dataset, caching the result
// under the chart's content hash and the extraction options.
func (r *Runner) Extract(ctx context.Context, path string, opts extract.Options, refresh bool) (*ExtractResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read chart %s", path)
	}
	key := r.Keyer.DatasetKey(cache.Hash(raw), cache.DatasetKeyOpts{
		Stroke:      opts.Filter.Stroke,
		Fill:        opts.Filter.Fill,
		StrokeWidth: opts.Filter.StrokeWidth,
		Region:      opts.Region.String(),
		Epsilon:     opts.Epsilon,
	})
	cacheHooks := observability.Cache()

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if ds, err := dataset.ReadJSON(bytes.NewReader(data)); err == nil {
				cacheHooks.OnCacheHit(ctx, cache.KeyTypeDataset)
				return &ExtractResult{Dataset: ds, CacheHit: true}, nil
			}
		}
	}
	cacheHooks.OnCacheMiss(ctx, cache.KeyTypeDataset)

	start := time.Now()
	ds, stats, err := extract.Read(bytes.NewReader(raw), opts)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("extracted contours",
		"elements", stats.Elements,
		"matched", stats.Matched,
		"dropped_points", stats.Dropped,
		"duration", time.Since(start))

	var buf bytes.Buffer
	if err := dataset.WriteJSON(ds, &buf); err == nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLDataset); err == nil {
			cacheHooks.OnCacheSet(ctx, cache.KeyTypeDataset, buf.Len())
		}
	}
	return &ExtractResult{Dataset: ds, Stats: stats}, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
