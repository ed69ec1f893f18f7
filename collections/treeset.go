package collections

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
)

// TreeSet is a B-tree-backed [Set] for ordered element types: each value
// occurs at most once and [TreeSet.Values] iterates in ascending order.
// Membership, insertion and removal are O(log n).
//
// TreeSet is not safe for concurrent use.
type TreeSet[T cmp.Ordered] struct {
	tree *btree.BTreeG[T]
}

var (
	_ Set[int] = (*TreeSet[int])(nil)
)

// NewTreeSet creates a TreeSet containing the given items.
// Duplicates among items collapse to a single element.
func NewTreeSet[T cmp.Ordered](items ...T) *TreeSet[T] {
	s := &TreeSet[T]{
		tree: btree.NewBTreeGOptions(
			func(a, b T) bool { return a < b },
			btree.Options{NoLocks: true},
		),
	}
	for _, item := range items {
		s.tree.Set(item)
	}
	return s
}

// TreeSetFrom creates a TreeSet from a slice.
// Duplicates in the slice collapse to a single element.
func TreeSetFrom[T cmp.Ordered](items []T) *TreeSet[T] {
	return NewTreeSet(items...)
}

// Count returns the number of elements.
func (s *TreeSet[T]) Count() int { return s.tree.Len() }

// IsEmpty reports whether the set contains no elements.
func (s *TreeSet[T]) IsEmpty() bool { return s.tree.Len() == 0 }

// Contains reports whether value is present.
func (s *TreeSet[T]) Contains(value T) bool {
	_, ok := s.tree.Get(value)
	return ok
}

// Add inserts value. Adding a value that is already present is a no-op, not
// an error; use [TreeSet.AddIfAbsent] to learn whether an insertion happened.
func (s *TreeSet[T]) Add(value T) error {
	s.tree.Set(value)
	return nil
}

// AddIfAbsent inserts value unless it is already present and reports whether
// the insertion happened.
func (s *TreeSet[T]) AddIfAbsent(value T) (bool, error) {
	_, replaced := s.tree.Set(value)
	return !replaced, nil
}

// Remove deletes value and reports whether it was present.
func (s *TreeSet[T]) Remove(value T) bool {
	_, ok := s.tree.Delete(value)
	return ok
}

// Values iterates over the elements in ascending order.
func (s *TreeSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Scan(func(item T) bool {
			return yield(item)
		})
	}
}

// All returns the elements as a plain slice, in ascending order.
func (s *TreeSet[T]) All() []T {
	out := make([]T, 0, s.tree.Len())
	s.tree.Scan(func(item T) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Min returns the smallest element.
// Returns the zero value and false when the set is empty.
func (s *TreeSet[T]) Min() (T, bool) { return s.tree.Min() }

// Max returns the largest element.
// Returns the zero value and false when the set is empty.
func (s *TreeSet[T]) Max() (T, bool) { return s.tree.Max() }
