package collections_test

import (
	"errors"
	"iter"

	"github.com/hasbyte1/go-collection-utils/collections"
)

// scriptedSource replays a fixed list of draws, for deterministic shuffles.
type scriptedSource struct {
	draws []int
	pos   int
}

func (s *scriptedSource) IntN(n int) int {
	if s.pos >= len(s.draws) {
		panic("scriptedSource: out of draws")
	}
	d := s.draws[s.pos]
	s.pos++
	if d < 0 || d >= n {
		panic("scriptedSource: draw out of range")
	}
	return d
}

// countingSource wraps another source and counts how many draws were made.
type countingSource struct {
	inner collections.Source
	calls int
}

func (s *countingSource) IntN(n int) int {
	s.calls++
	return s.inner.IntN(n)
}

// weakList exposes only the weak Collection surface of an ArrayList, hiding
// its Sequence capability so tests can force the fallback paths.
type weakList[T comparable] struct {
	inner *collections.ArrayList[T]
}

func newWeakList[T comparable](items ...T) *weakList[T] {
	return &weakList[T]{inner: collections.NewArrayList(items...)}
}

func (w *weakList[T]) Count() int              { return w.inner.Count() }
func (w *weakList[T]) Contains(value T) bool   { return w.inner.Contains(value) }
func (w *weakList[T]) Add(value T) error       { return w.inner.Add(value) }
func (w *weakList[T]) Remove(value T) bool     { return w.inner.Remove(value) }
func (w *weakList[T]) Values() iter.Seq[T]     { return w.inner.Values() }

// noSwapList exposes the Sequence surface of an ArrayList without its Swap
// method, forcing Shuffle onto the generic Get/Set path.
type noSwapList[T comparable] struct {
	inner *collections.ArrayList[T]
}

func newNoSwapList[T comparable](items ...T) *noSwapList[T] {
	return &noSwapList[T]{inner: collections.NewArrayList(items...)}
}

func (l *noSwapList[T]) Count() int                    { return l.inner.Count() }
func (l *noSwapList[T]) Contains(value T) bool         { return l.inner.Contains(value) }
func (l *noSwapList[T]) Add(value T) error             { return l.inner.Add(value) }
func (l *noSwapList[T]) Remove(value T) bool           { return l.inner.Remove(value) }
func (l *noSwapList[T]) Values() iter.Seq[T]           { return l.inner.Values() }
func (l *noSwapList[T]) Get(index int) (T, bool)       { return l.inner.Get(index) }
func (l *noSwapList[T]) Set(index int, value T) error  { return l.inner.Set(index, value) }
func (l *noSwapList[T]) RemoveAt(index int) (T, error) { return l.inner.RemoveAt(index) }

// errFull is returned by cappedList once its capacity is reached.
var errFull = errors.New("capped list is full")

// cappedList rejects insertions beyond a fixed capacity, for exercising
// mid-batch insertion failures.
type cappedList[T comparable] struct {
	*weakList[T]
	capacity int
}

func newCappedList[T comparable](capacity int, items ...T) *cappedList[T] {
	return &cappedList[T]{weakList: newWeakList(items...), capacity: capacity}
}

func (c *cappedList[T]) Add(value T) error {
	if c.Count() >= c.capacity {
		return errFull
	}
	return c.weakList.Add(value)
}
