// Package pipeline runs the enumerate and render stages behind the CLI and
// the HTTP API.
//
// Both entry points need the same behavior: validate a request, produce the
// arrangements (or the transition graph artifacts) for it, and cache every
// stage so repeated requests cost nothing. Centralizing that here keeps the
// caching logic in one place.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Enumerate: produce the permutations of the input, in heap or lexical
//     order, up to the requested limit
//  2. Render: generate output artifacts (JSON, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Elements: []string{"a", "b", "c"},
//	    Order:    "heap",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run the enumerate stage alone:
//
//	arr, err := runner.Enumerate(ctx, opts)
package pipeline

import (
	"time"

	perrors "github.com/matzehuels/permute/pkg/errors"
)

const (
	// DefaultLimit caps the arrangements produced when no limit is given.
	// Factorials outrun any terminal or response body quickly, so the
	// default is conservative; requests can raise it up to MaxLimit.
	DefaultLimit = 1000

	// MaxLimit is the most arrangements a single request may ask for.
	MaxLimit = 10000
)

// Enumeration orders, re-exported so callers need only this package.
const (
	OrderHeap = perrors.OrderHeap
	OrderLex  = perrors.OrderLex
)

// Format constants for output artifacts.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Enumerate options
	Elements []string `json:"elements"`
	Order    string   `json:"order,omitempty"` // heap or lex
	Limit    int      `json:"limit,omitempty"` // max arrangements, 0 means DefaultLimit
	Refresh  bool     `json:"refresh,omitempty"`

	// Graph options (used by the dot and svg formats)
	Transpositions bool `json:"transpositions,omitempty"` // add the full one-swap neighborhood
	Detailed       bool `json:"detailed,omitempty"`       // label walk edges with step and swap
	MaxNodes       int  `json:"max_nodes,omitempty"`      // graph node budget, 0 means permgraph's default

	// Render options
	Formats []string `json:"formats,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Arrangements is the output of the enumerate stage. It doubles as the
// cache payload and as the body of the JSON artifact.
type Arrangements struct {
	// Permutations holds the arrangements in traversal order. The input
	// arrangement always comes first.
	Permutations [][]string `json:"permutations"`

	// Truncated reports that the limit cut the traversal short.
	Truncated bool `json:"truncated"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Arrangements is the enumerate stage output.
	Arrangements Arrangements

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Produced      int
	EnumerateTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	EnumerateHit bool // whether the arrangements came from cache
	RenderHit    bool // whether all artifacts came from cache
}

// ValidateFormat checks that an artifact format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return perrors.New(perrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForEnumerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForEnumerate checks required fields for the enumerate stage and
// applies its defaults.
func (o *Options) ValidateForEnumerate() error {
	if err := perrors.ValidateElements(o.Elements); err != nil {
		return err
	}

	if o.Order == "" {
		o.Order = perrors.OrderHeap
	}
	if err := perrors.ValidateOrder(o.Order); err != nil {
		return err
	}

	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "limit cannot be negative")
	}
	if o.Limit > MaxLimit {
		return perrors.New(perrors.ErrCodeInvalidInput, "limit too large (max %d)", MaxLimit)
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
}

// ValidateForRender validates and sets defaults for the render stage.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.MaxNodes < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "max_nodes cannot be negative")
	}
	return nil
}

// NeedsGraph reports whether any requested format requires building the
// transition graph.
func (o *Options) NeedsGraph() bool {
	for _, f := range o.Formats {
		if f == FormatDOT || f == FormatSVG {
			return true
		}
	}
	return false
}
