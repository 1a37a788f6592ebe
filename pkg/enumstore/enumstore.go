// Package enumstore persists resumable enumerations.
//
// A full permutation walk can dwarf any single request: twelve elements
// already have 479 million arrangements. The API therefore hands out
// arrangements in batches and stores a cursor between calls. Walks run in
// lexicographic order, where the current arrangement IS the complete
// cursor state: nothing else needs to be serialized, and a walk can resume
// on any replica from just the stored sequence.
//
// Two backends implement [Store]:
//   - memory: in-process storage for development and tests
//   - mongo: document storage for production deployments, with a TTL
//     index expiring abandoned walks
//
// # Usage
//
//	store := enumstore.NewMemStore()
//
//	e := enumstore.New([]string{"a", "b", "c"}, enumstore.DefaultTTL)
//	store.Put(ctx, e)
//
//	// Later, possibly on another replica:
//	e, err := store.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	batch := e.Advance(100)
//	store.Put(ctx, e)
package enumstore

import (
	"context"
	"errors"
	"math/big"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/permute/pkg/permute"
)

// Sentinel errors for enumeration storage.
var (
	// ErrNotFound is returned when an enumeration does not exist.
	ErrNotFound = errors.New("enumeration not found")

	// ErrExpired is returned when an enumeration has exceeded its TTL.
	ErrExpired = errors.New("enumeration expired")
)

// DefaultTTL is how long an enumeration survives between batches.
const DefaultTTL = 24 * time.Hour

// Enumeration is a resumable walk through the arrangements of a sequence.
//
// Elements always holds the next arrangement to hand out, which makes the
// document self-contained: loading it on any process resumes the walk
// exactly where it stopped.
type Enumeration struct {
	ID        string    `bson:"_id" json:"id"`
	Elements  []string  `bson:"elements" json:"elements"`
	Produced  uint64    `bson:"produced" json:"produced"`
	Total     string    `bson:"total" json:"total"`
	Done      bool      `bson:"done" json:"done"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

// Store is the interface for enumeration storage backends.
type Store interface {
	// Get retrieves an enumeration by ID. It returns ErrNotFound for
	// unknown IDs and ErrExpired for enumerations past their TTL.
	Get(ctx context.Context, id string) (*Enumeration, error)

	// Put stores an enumeration, replacing any previous state under the
	// same ID.
	Put(ctx context.Context, e *Enumeration) error

	// Delete removes an enumeration. Deleting an absent ID is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired enumerations (may be a no-op for backends
	// that expire documents themselves).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// New creates an enumeration starting at the given arrangement.
//
// The walk begins exactly at elements, not at the sorted minimal
// arrangement: callers resuming a previously known position pass it here
// directly. Total reports how many distinct arrangements the whole
// sequence has, counting duplicate elements once.
func New(elements []string, ttl time.Duration) *Enumeration {
	now := time.Now().UTC()
	return &Enumeration{
		ID:        uuid.NewString(),
		Elements:  slices.Clone(elements),
		Total:     distinctArrangements(elements).String(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the enumeration has expired.
func (e *Enumeration) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Advance hands out up to n arrangements and moves the cursor past them.
// It returns fewer than n when the walk reaches the lexicographically
// maximal arrangement, and nil once the enumeration is done. The caller is
// responsible for persisting the advanced state.
func (e *Enumeration) Advance(n int) [][]string {
	if e.Done || n <= 0 {
		return nil
	}
	batch := make([][]string, 0, min(n, 64))
	for len(batch) < n {
		batch = append(batch, slices.Clone(e.Elements))
		e.Produced++
		if !permute.NextLexical(e.Elements) {
			e.Done = true
			break
		}
	}
	return batch
}

// distinctArrangements counts the arrangements of a multiset: n! divided
// by the factorial of each element's multiplicity.
func distinctArrangements(elements []string) *big.Int {
	total := permute.FactorialBig(len(elements))
	counts := make(map[string]int, len(elements))
	for _, el := range elements {
		counts[el]++
	}
	for _, c := range counts {
		if c > 1 {
			total.Div(total, permute.FactorialBig(c))
		}
	}
	return total
}
