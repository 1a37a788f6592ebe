package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/permute/pkg/cache"
	"github.com/matzehuels/permute/pkg/observability"
	"github.com/matzehuels/permute/pkg/permgraph"
	"github.com/matzehuels/permute/pkg/permute"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete enumerate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Enumerate
	enumStart := time.Now()
	arr, enumHit, err := r.EnumerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	result.Arrangements = arr
	result.Stats.EnumerateTime = time.Since(enumStart)
	result.Stats.Produced = len(arr.Permutations)
	result.CacheInfo.EnumerateHit = enumHit

	r.Logger.Info("enumerated arrangements",
		"count", len(arr.Permutations),
		"order", opts.Order,
		"truncated", arr.Truncated,
		"duration", result.Stats.EnumerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, arr, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// EnumerateWithCacheInfo produces the arrangements with caching and returns
// cache hit info.
func (r *Runner) EnumerateWithCacheInfo(ctx context.Context, opts Options) (Arrangements, bool, error) {
	if err := opts.ValidateForEnumerate(); err != nil {
		return Arrangements{}, false, err
	}

	observability.Pipeline().OnEnumerateStart(ctx, opts.Order, len(opts.Elements))
	start := time.Now()

	cacheKey := cache.Key("enum", opts.Order, opts.Elements, opts.Limit)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached Arrangements
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "enumerate")
				observability.Pipeline().OnEnumerateComplete(ctx, opts.Order, len(cached.Permutations), time.Since(start), nil)
				return cached, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "enumerate")
	}

	arr, err := enumerate(opts)
	observability.Pipeline().OnEnumerateComplete(ctx, opts.Order, len(arr.Permutations), time.Since(start), err)
	if err != nil {
		return Arrangements{}, false, err
	}

	// Cache the result
	if data, err := json.Marshal(arr); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLEnumeration)
		observability.Cache().OnCacheSet(ctx, "enumerate", len(data))
	}

	return arr, false, nil // Cache miss
}

// Enumerate is a convenience wrapper that calls EnumerateWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Enumerate(ctx context.Context, opts Options) (Arrangements, error) {
	arr, _, err := r.EnumerateWithCacheInfo(ctx, opts)
	return arr, err
}

// enumerate walks the arrangements of opts.Elements in the requested order.
// It never mutates opts.Elements.
func enumerate(opts Options) (Arrangements, error) {
	var arr Arrangements

	switch opts.Order {
	case OrderLex:
		work := slices.Clone(opts.Elements)
		arr.Permutations = append(arr.Permutations, slices.Clone(work))
		for len(arr.Permutations) < opts.Limit && permute.NextLexical(work) {
			arr.Permutations = append(arr.Permutations, slices.Clone(work))
		}
		// One probe past the limit tells us whether anything was cut off.
		if len(arr.Permutations) == opts.Limit {
			arr.Truncated = permute.NextLexical(work)
		}

	default: // OrderHeap
		h, err := permute.NewHeap(slices.Clone(opts.Elements))
		if err != nil {
			return Arrangements{}, err
		}
		for p, ok := h.Next(); ok; p, ok = h.Next() {
			arr.Permutations = append(arr.Permutations, slices.Clone(p))
			if len(arr.Permutations) == opts.Limit {
				_, more := h.Next()
				arr.Truncated = more
				break
			}
		}
	}

	return arr, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. The arrangements are only consulted for the JSON artifact; the
// graph formats rebuild the walk from opts.Elements.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, arr Arrangements, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	keyOpts := artifactKeyOpts(opts)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := cache.Key("artifact", format, keyOpts)
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	rendered, err := render(arr, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := cache.Key("artifact", format, keyOpts)
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact:"+format, len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, arr Arrangements, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, arr, opts)
	return artifacts, err
}

// render produces the requested artifacts. The transition graph is built at
// most once and shared by the dot and svg formats.
func render(arr Arrangements, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	if opts.NeedsGraph() {
		g, err := permgraph.Build(opts.Elements, permgraph.Options{
			Transpositions: opts.Transpositions,
			MaxNodes:       opts.MaxNodes,
		})
		if err != nil {
			return nil, err
		}
		dot = permgraph.ToDOT(g, permgraph.DOTOptions{Detailed: opts.Detailed})
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			data, err := json.MarshalIndent(arr, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("marshal arrangements: %w", err)
			}
			artifacts[format] = data
		case FormatDOT:
			artifacts[format] = []byte(dot)
		case FormatSVG:
			svg, err := permgraph.RenderSVG(dot)
			if err != nil {
				return nil, fmt.Errorf("render svg: %w", err)
			}
			artifacts[format] = svg
		}
	}

	return artifacts, nil
}

// artifactKeyOpts collects every option that changes artifact bytes, so the
// cache key covers exactly the render-relevant inputs.
func artifactKeyOpts(opts Options) map[string]any {
	return map[string]any{
		"elements":       opts.Elements,
		"order":          opts.Order,
		"limit":          opts.Limit,
		"transpositions": opts.Transpositions,
		"detailed":       opts.Detailed,
		"max_nodes":      opts.MaxNodes,
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
