package collections

import (
	"fmt"
	"iter"
)

// Frozen is a read-only view over another collection, produced by [Freeze].
type Frozen[T comparable] struct {
	inner Collection[T]
}

var (
	_ Collection[int] = (*Frozen[int])(nil)
)

// Freeze wraps c in a read-only view: reads pass through, [Frozen.Add]
// reports [ErrReadOnly] and [Frozen.Remove] removes nothing.
//
// The view intentionally exposes only the weak [Collection] capability, even
// when c is a [Sequence] or [Set] — the stronger capabilities exist to grant
// writes the view forbids. Mutations applied directly to c remain visible
// through the view.
func Freeze[T comparable](c Collection[T]) *Frozen[T] {
	return &Frozen[T]{inner: c}
}

// Count returns the number of elements in the underlying collection.
func (f *Frozen[T]) Count() int { return f.inner.Count() }

// Contains reports whether value is present in the underlying collection.
func (f *Frozen[T]) Contains(value T) bool { return f.inner.Contains(value) }

// Add always fails with [ErrReadOnly].
func (f *Frozen[T]) Add(value T) error {
	return fmt.Errorf("%w: cannot add %v", ErrReadOnly, value)
}

// Remove removes nothing and reports false.
func (f *Frozen[T]) Remove(T) bool { return false }

// Values iterates over the underlying collection's elements.
func (f *Frozen[T]) Values() iter.Seq[T] { return f.inner.Values() }
