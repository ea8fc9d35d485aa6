// Package observability provides hooks for instrumenting renders.
//
// Hooks are registered once at startup by the binary; library code only
// calls the accessors:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
//	observability.Pipeline().OnRenderStart(ctx, seed, formats)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, seed, formats, elapsed, err)
//
// The defaults are no-ops, so nothing is emitted unless a binary opts in.
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// Dataset loading
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, paths int, duration time.Duration, err error)

	// Rendering
	OnRenderStart(ctx context.Context, seed string, formats []string)
	OnRenderComplete(ctx context.Context, seed string, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                     {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error)        {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                         {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// LogHooks writes every event to a logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnLoadStart(_ context.Context, path string) {
	h.Logger.Debug("loading dataset", "path", path)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, path string, paths int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("dataset load failed", "path", path, "err", err)
		return
	}
	h.Logger.Debug("loaded dataset", "path", path, "paths", paths, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, seed string, formats []string) {
	h.Logger.Debug("render start", "seed", seed, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, seed string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "seed", seed, "err", err)
		return
	}
	h.Logger.Debug("render done", "seed", seed, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op hooks. Mostly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
