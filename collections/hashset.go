package collections

import "iter"

// HashSet is a map-backed [Set]: each value occurs at most once and no
// iteration order is guaranteed.
//
// HashSet is not safe for concurrent use.
type HashSet[T comparable] struct {
	items map[T]struct{}
}

var (
	_ Set[int] = (*HashSet[int])(nil)
)

// NewHashSet creates a HashSet containing the given items.
// Duplicates among items collapse to a single element.
func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// HashSetFrom creates a HashSet from a slice.
// Duplicates in the slice collapse to a single element.
func HashSetFrom[T comparable](items []T) *HashSet[T] {
	return NewHashSet(items...)
}

// Count returns the number of elements.
func (s *HashSet[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the set contains no elements.
func (s *HashSet[T]) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports whether value is present. Amortized O(1).
func (s *HashSet[T]) Contains(value T) bool {
	_, ok := s.items[value]
	return ok
}

// Add inserts value. Adding a value that is already present is a no-op, not
// an error; use [HashSet.AddIfAbsent] to learn whether an insertion happened.
func (s *HashSet[T]) Add(value T) error {
	s.ensure()
	s.items[value] = struct{}{}
	return nil
}

// AddIfAbsent inserts value unless it is already present and reports whether
// the insertion happened.
func (s *HashSet[T]) AddIfAbsent(value T) (bool, error) {
	if s.Contains(value) {
		return false, nil
	}
	s.ensure()
	s.items[value] = struct{}{}
	return true, nil
}

// Remove deletes value and reports whether it was present.
func (s *HashSet[T]) Remove(value T) bool {
	if !s.Contains(value) {
		return false
	}
	delete(s.items, value)
	return true
}

// Values iterates over the elements in unspecified order.
func (s *HashSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// All returns the elements as a plain slice, in unspecified order.
func (s *HashSet[T]) All() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

// Clear removes all elements.
func (s *HashSet[T]) Clear() {
	s.items = make(map[T]struct{})
}

// ensure makes the zero value usable.
func (s *HashSet[T]) ensure() {
	if s.items == nil {
		s.items = make(map[T]struct{})
	}
}
