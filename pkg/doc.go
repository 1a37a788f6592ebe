// Package pkg provides the core libraries for Permute arrangement enumeration.
//
// # Overview
//
// Permute enumerates the arrangements of a sequence and turns the traversal
// into inspectable artifacts: plain listings, JSON, DOT, and rendered SVG of
// the transposition graph. The pkg directory is organized into five areas:
//
//  1. [permute] - Enumeration engines (resumable stepping, recursive, lexicographic)
//  2. [permgraph] - Transposition-graph construction and DOT/SVG rendering
//  3. [pipeline] - Orchestration (validate → enumerate → render) with caching
//  4. [cache] / [enumstore] - Persistence (artifact cache, server-side cursors)
//  5. [errors] / [observability] / [buildinfo] - Shared plumbing
//
// # Architecture
//
// The typical data flow through Permute:
//
//	Elements (CLI args / API request)
//	         ↓
//	    [permute] package (enumerate arrangements)
//	         ↓
//	    [permgraph] package (transposition graph)
//	         ↓
//	    [pipeline] package (caching + artifact rendering)
//	         ↓
//	    lines/JSON/DOT/SVG output
//
// # Quick Start
//
// Step a sequence through all of its arrangements:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/permute/pkg/permute"
//	)
//
//	h, err := permute.NewHeap([]string{"a", "b", "c"})
//	if err != nil {
//	    return err
//	}
//	for p, ok := h.Next(); ok; p, ok = h.Next() {
//	    fmt.Println(p) // each step swaps exactly two elements
//	}
//
// # Main Packages
//
// [permute] - The enumeration engines. [permute.Heap] steps a caller-owned
// slice through all n! arrangements in place, one swap at a time, with state
// small enough to pause, persist, and resume. [permute.Enumerate] and
// [permute.EnumerateControl] visit arrangements recursively, the latter with
// early exit through [permute.Control]. [permute.NextLexical] and
// [permute.PrevLexical] advance a slice through ordered arrangements.
// Counting lives here too: [permute.Factorial], [permute.FactorialBig], and
// the distinct-arrangement helpers.
//
// [permgraph] - Builds the graph whose vertices are arrangements and whose
// edges connect arrangements differing by one transposition, with the
// traversal order marked. Emits Graphviz DOT and renders SVG in process.
//
// [pipeline] - The shared validate → enumerate → render pipeline used by the
// CLI and the HTTP API. Both stages are cached under content-derived keys so
// repeated requests skip recomputation.
//
// [cache] - Keyed byte cache behind the pipeline: file-backed for the CLI,
// Redis for server deployments, a null cache to disable caching entirely.
//
// [enumstore] - Resumable server-side enumerations. A cursor records its
// elements and position, advances in batches, and expires on a TTL. Memory
// and MongoDB backends.
//
// [errors] - Coded errors shared by every surface, plus the input validation
// helpers (element counts, orders, batch sizes).
//
// [observability] - Hook interfaces for pipeline stages, cache traffic, and
// enumeration lifecycle events, with no-op defaults.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Common Workflows
//
// Search with early exit:
//
//	res := permute.EnumerateControl(xs, func(p []int) permute.Control[[]int] {
//	    if isGoal(p) {
//	        return permute.Break(slices.Clone(p))
//	    }
//	    return permute.Continue[[]int]()
//	})
//	if hit, ok := res.Value(); ok {
//	    fmt.Println("found", hit)
//	}
//
// Walk arrangements in dictionary order:
//
//	xs := []int{1, 2, 3}
//	for ok := true; ok; ok = permute.NextLexical(xs) {
//	    fmt.Println(xs)
//	}
//
// Render the transposition graph:
//
//	g, err := permgraph.Build([]string{"a", "b", "c"}, permgraph.Options{})
//	if err != nil {
//	    return err
//	}
//	svg, err := permgraph.RenderSVG(permgraph.ToDOT(g, permgraph.DOTOptions{}))
//
// Run the full pipeline with caching:
//
//	runner := pipeline.NewRunner(fileCache, logger)
//	defer runner.Close()
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Elements: []string{"a", "b", "c"},
//	    Formats:  []string{pipeline.FormatSVG},
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/permute/...            # Specific package
//	go test -run Example                 # Examples only
//	go test -tags integration ./pkg/...  # Include integration tests
//
// [permute]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/permute
// [permgraph]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/permgraph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/cache
// [enumstore]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/enumstore
// [errors]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/permute/pkg/buildinfo
package pkg
