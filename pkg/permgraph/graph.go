// Package permgraph builds transition graphs over permutation walks.
//
// A walk through all arrangements of a sequence is also a graph: every
// arrangement is a node, and every step of the walk is an edge labelled
// with the pair of positions it swapped. Heap's algorithm makes this graph
// worth drawing, since consecutive arrangements always differ by exactly
// one swap.
//
// Optionally the graph also carries the full transposition neighborhood:
// an edge between every pair of arrangements one swap apart, whether or
// not the walk uses it. For three or four elements this is the classic
// permutohedron skeleton with the walk highlighted inside it.
//
// Build the graph with [Build], serialize with [ToDOT], and rasterize with
// [RenderSVG].
package permgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/permute/pkg/permute"
)

// DefaultMaxNodes bounds graph size when [Options.MaxNodes] is zero. Seven
// elements (5040 arrangements) is already past what a drawing can convey.
const DefaultMaxNodes = 5040

// ErrTooLarge is returned by [Build] when the sequence has more
// arrangements than the node budget allows.
var ErrTooLarge = errors.New("permgraph: too many arrangements")

// Options configures graph construction.
type Options struct {
	// Transpositions adds an edge between every pair of arrangements that
	// differ by a single swap, not just the steps the walk takes.
	Transpositions bool

	// MaxNodes caps the number of arrangements. Zero means
	// DefaultMaxNodes.
	MaxNodes int
}

// Node is one distinct arrangement.
type Node struct {
	ID  string   // arrangement joined with spaces, unique per node
	Seq []string // the arrangement itself
}

// Edge connects two arrangements that differ by one swap.
type Edge struct {
	From string
	To   string
	Swap [2]int // positions exchanged between From and To
	Step int    // 1-based walk step, or 0 for a neighborhood edge
}

// Graph is a permutation transition graph. Construct with [Build].
type Graph struct {
	nodes  []Node
	edges  []Edge
	byID   map[string]int
	walkID []string // node IDs in walk order
}

// Nodes returns the graph's nodes in walk discovery order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns walk edges first, then neighborhood edges.
func (g *Graph) Edges() []Edge { return g.edges }

// Walk returns the node IDs in the order the walk visits them. With
// duplicate elements a node can appear several times.
func (g *Graph) Walk() []string { return g.walkID }

// Build enumerates the arrangements of elements and assembles their
// transition graph.
//
// Arrangements that read identically (possible when elements repeat) are
// merged into a single node, so the graph is over distinct visible
// arrangements. Sequences whose arrangement count exceeds the node budget
// are rejected with [ErrTooLarge] before any enumeration happens.
func Build(elements []string, opts Options) (*Graph, error) {
	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	if len(elements) <= 20 {
		if count := permute.Factorial(len(elements)); count > uint64(maxNodes) {
			return nil, fmt.Errorf("%w: %d elements have %d arrangements (budget %d)",
				ErrTooLarge, len(elements), count, maxNodes)
		}
	} else {
		return nil, fmt.Errorf("%w: %d elements", ErrTooLarge, len(elements))
	}

	g := &Graph{byID: make(map[string]int)}

	h, err := permute.NewHeap(append([]string(nil), elements...))
	if err != nil {
		return nil, err
	}

	var prev []string
	for p, ok := h.Next(); ok; p, ok = h.Next() {
		id := g.addNode(p)
		g.walkID = append(g.walkID, id)
		if prev != nil {
			if i, j, changed := diffSwap(prev, p); changed {
				g.edges = append(g.edges, Edge{
					From: nodeID(prev),
					To:   id,
					Swap: [2]int{i, j},
					Step: len(g.walkID) - 1,
				})
			}
		}
		prev = append(prev[:0], p...)
	}

	if opts.Transpositions {
		g.addNeighborhood()
	}
	return g, nil
}

// addNode registers an arrangement if its ID is new and returns the ID.
func (g *Graph) addNode(seq []string) string {
	id := nodeID(seq)
	if _, ok := g.byID[id]; !ok {
		g.byID[id] = len(g.nodes)
		g.nodes = append(g.nodes, Node{ID: id, Seq: append([]string(nil), seq...)})
	}
	return id
}

// addNeighborhood connects every pair of nodes one transposition apart.
// Each node tries all position pairs and keeps the edge only when the
// neighbor sorts after it, so every undirected adjacency appears once.
// Walk edges are skipped to avoid drawing them twice.
func (g *Graph) addNeighborhood() {
	onWalk := make(map[[2]string]bool, len(g.edges))
	for _, e := range g.edges {
		onWalk[[2]string{e.From, e.To}] = true
		onWalk[[2]string{e.To, e.From}] = true
	}

	for _, n := range g.nodes {
		work := append([]string(nil), n.Seq...)
		for i := 0; i < len(work); i++ {
			for j := i + 1; j < len(work); j++ {
				if work[i] == work[j] {
					continue
				}
				work[i], work[j] = work[j], work[i]
				neighbor := nodeID(work)
				work[i], work[j] = work[j], work[i]

				if neighbor <= n.ID || onWalk[[2]string{n.ID, neighbor}] {
					continue
				}
				g.edges = append(g.edges, Edge{From: n.ID, To: neighbor, Swap: [2]int{i, j}})
			}
		}
	}
}

// diffSwap locates the two positions where consecutive walk arrangements
// differ. Equal-element swaps change nothing visible and report false.
func diffSwap(a, b []string) (int, int, bool) {
	i, j := -1, -1
	for k := range a {
		if a[k] != b[k] {
			if i < 0 {
				i = k
			} else {
				j = k
			}
		}
	}
	if i < 0 || j < 0 {
		return 0, 0, false
	}
	return i, j, true
}

func nodeID(seq []string) string {
	if len(seq) == 0 {
		return "(empty)"
	}
	return strings.Join(seq, " ")
}
