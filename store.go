package curve3

import (
	"fmt"
	"iter"
	"slices"
)

// Handle addresses a curve in a [Store].
type Handle int

// Store is an append-only arena of curves. Collections refer to curves by
// [Handle], so several collections can share the same curve instances.
//
// A Store is safe for concurrent reads. Adding curves must not happen
// concurrently with any other use.
type Store struct {
	curves []Curve
}

// NewStore returns an empty store with room for capacity curves.
func NewStore(capacity int) *Store {
	return &Store{curves: make([]Curve, 0, capacity)}
}

// Add appends c to the store and returns its handle.
func (s *Store) Add(c Curve) Handle {
	s.curves = append(s.curves, c)
	return Handle(len(s.curves) - 1)
}

// Len returns the number of curves in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.curves)
}

// Curve returns the curve addressed by h.
func (s *Store) Curve(h Handle) Curve {
	return s.curves[s.check(h)]
}

// Ref returns a pointer to the stored curve addressed by h. Two calls with the
// same handle return the same pointer as long as the store doesn't grow past
// its capacity in between.
func (s *Store) Ref(h Handle) *Curve {
	return &s.curves[s.check(h)]
}

func (s *Store) check(h Handle) int {
	if h < 0 || int(h) >= len(s.curves) {
		panic(fmt.Sprintf("curve handle %d out of range [0, %d)", h, len(s.curves)))
	}
	return int(h)
}

// Collection returns a collection of every curve in the store, in insertion
// order.
func (s *Store) Collection() Collection {
	handles := make([]Handle, len(s.curves))
	for i := range handles {
		handles[i] = Handle(i)
	}
	return Collection{store: s, handles: handles}
}

// Collection is an ordered sequence of curves held in a [Store]. Collections
// derived from one another share the store and thus the curve instances.
type Collection struct {
	store   *Store
	handles []Handle
}

// NewCollection returns a collection of the given curves in s.
func NewCollection(s *Store, handles ...Handle) Collection {
	for _, h := range handles {
		s.check(h)
	}
	return Collection{store: s, handles: slices.Clone(handles)}
}

func (c Collection) Len() int { return len(c.handles) }

// Store returns the store the collection's curves live in.
func (c Collection) Store() *Store { return c.store }

// Handle returns the handle of the i'th curve.
func (c Collection) Handle(i int) Handle { return c.handles[i] }

// Handles returns a copy of the collection's handles.
func (c Collection) Handles() []Handle { return slices.Clone(c.handles) }

// At returns the i'th curve.
func (c Collection) At(i int) Curve { return c.store.Curve(c.handles[i]) }

// Ref returns a pointer to the i'th curve. See [Store.Ref].
func (c Collection) Ref(i int) *Curve { return c.store.Ref(c.handles[i]) }

// All returns an iterator over the collection's indices and curves.
func (c Collection) All() iter.Seq2[int, Curve] {
	return func(yield func(int, Curve) bool) {
		for i, h := range c.handles {
			if !yield(i, c.store.Curve(h)) {
				return
			}
		}
	}
}
