package enumstore

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	input := []string{"a", "b", "c"}
	e := New(input, time.Hour)

	if e.ID == "" {
		t.Error("ID should be generated")
	}
	if e2 := New(input, time.Hour); e2.ID == e.ID {
		t.Error("IDs should be unique")
	}
	if e.Total != "6" {
		t.Errorf("Total = %s, want 6", e.Total)
	}
	if e.Done {
		t.Error("fresh enumeration should not be done")
	}
	if e.Produced != 0 {
		t.Errorf("Produced = %d, want 0", e.Produced)
	}

	// The cursor is a copy of the input
	input[0] = "mutated"
	if e.Elements[0] != "a" {
		t.Error("enumeration should not alias the caller's slice")
	}
}

func TestNew_DuplicateElements(t *testing.T) {
	// Duplicates collapse the space: 3!/2! = 3 distinct arrangements.
	e := New([]string{"a", "a", "b"}, time.Hour)
	if e.Total != "3" {
		t.Errorf("Total = %s, want 3", e.Total)
	}

	// All but one element equal: 4!/3! = 4.
	e = New([]string{"x", "x", "x", "y"}, time.Hour)
	if e.Total != "4" {
		t.Errorf("Total = %s, want 4", e.Total)
	}
}

func TestEnumeration_Advance(t *testing.T) {
	e := New([]string{"a", "b", "c"}, time.Hour)

	batch := e.Advance(2)
	want := [][]string{{"a", "b", "c"}, {"a", "c", "b"}}
	if len(batch) != 2 {
		t.Fatalf("Advance(2) returned %d arrangements, want 2", len(batch))
	}
	for i := range want {
		if !slices.Equal(batch[i], want[i]) {
			t.Errorf("batch[%d] = %v, want %v", i, batch[i], want[i])
		}
	}
	if e.Produced != 2 || e.Done {
		t.Errorf("after Advance(2): Produced=%d Done=%v, want 2 false", e.Produced, e.Done)
	}

	// Requesting more than remains drains the walk.
	rest := e.Advance(10)
	if len(rest) != 4 {
		t.Errorf("Advance(10) returned %d arrangements, want the remaining 4", len(rest))
	}
	if !e.Done || e.Produced != 6 {
		t.Errorf("after draining: Produced=%d Done=%v, want 6 true", e.Produced, e.Done)
	}
	if last := rest[len(rest)-1]; !slices.Equal(last, []string{"c", "b", "a"}) {
		t.Errorf("final arrangement = %v, want [c b a]", last)
	}

	// A done enumeration yields nothing more.
	if extra := e.Advance(1); extra != nil {
		t.Errorf("Advance on done enumeration = %v, want nil", extra)
	}
}

func TestEnumeration_AdvanceFromMidway(t *testing.T) {
	// Walks resume from the given arrangement, they do not restart at the
	// sorted minimum.
	e := New([]string{"b", "c", "a"}, time.Hour)

	batch := e.Advance(100)
	want := [][]string{
		{"b", "c", "a"},
		{"c", "a", "b"},
		{"c", "b", "a"},
	}
	if len(batch) != len(want) {
		t.Fatalf("got %d arrangements, want %d", len(batch), len(want))
	}
	for i := range want {
		if !slices.Equal(batch[i], want[i]) {
			t.Errorf("batch[%d] = %v, want %v", i, batch[i], want[i])
		}
	}
}

func TestEnumeration_EmptySequence(t *testing.T) {
	e := New(nil, time.Hour)
	if e.Total != "1" {
		t.Errorf("Total = %s, want 1", e.Total)
	}

	batch := e.Advance(5)
	if len(batch) != 1 || len(batch[0]) != 0 {
		t.Errorf("batch = %v, want one empty arrangement", batch)
	}
	if !e.Done {
		t.Error("empty sequence should be done after one arrangement")
	}
}

func TestMemStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	e := New([]string{"a", "b"}, time.Hour)
	if err := store.Put(ctx, e); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !slices.Equal(got.Elements, e.Elements) || got.Total != e.Total {
		t.Errorf("Get returned %+v, want %+v", got, e)
	}

	// The store hands out copies: advancing the copy must not move the
	// stored cursor.
	got.Advance(1)
	again, err := store.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Produced != 0 {
		t.Error("stored enumeration advanced without a Put")
	}

	if err := store.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}

	if err := store.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
}

func TestMemStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	e := New([]string{"a"}, -time.Second)
	if err := store.Put(ctx, e); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := store.Get(ctx, e.ID); !errors.Is(err, ErrExpired) {
		t.Errorf("Get expired = %v, want ErrExpired", err)
	}

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, err := store.Get(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Cleanup = %v, want ErrNotFound", err)
	}
}

func TestMemStore_ResumedWalkCoversEverything(t *testing.T) {
	// Simulate the API flow: load, advance a small batch, store, repeat.
	// The union of batches must be the full lexicographic walk.
	ctx := context.Background()
	store := NewMemStore()

	e := New([]string{"1", "2", "3"}, time.Hour)
	if err := store.Put(ctx, e); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var all [][]string
	for {
		cur, err := store.Get(ctx, e.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if cur.Done {
			break
		}
		all = append(all, cur.Advance(2)...)
		if err := store.Put(ctx, cur); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	want := [][]string{
		{"1", "2", "3"}, {"1", "3", "2"}, {"2", "1", "3"},
		{"2", "3", "1"}, {"3", "1", "2"}, {"3", "2", "1"},
	}
	if len(all) != len(want) {
		t.Fatalf("resumed walk produced %d arrangements, want %d", len(all), len(want))
	}
	for i := range want {
		if !slices.Equal(all[i], want[i]) {
			t.Errorf("arrangement %d = %v, want %v", i, all[i], want[i])
		}
	}
}
