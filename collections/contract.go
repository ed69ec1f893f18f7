package collections

import "iter"

// Collection is the weakest capability accepted by the algorithms in this
// package: a finite, mutable container of comparable elements.
//
// Implement Collection (and, where the representation allows, [Sequence] or
// [Set]) on your own types to make them eligible for [AddUnique],
// [RemoveWhere], [ContainsAny] and friends; the algorithms discover the
// stronger capabilities through [AsSequence] and [AsSet] rather than by
// naming concrete types.
type Collection[T comparable] interface {
	// Count returns the number of elements.
	Count() int

	// Contains reports whether value is present.
	Contains(value T) bool

	// Add inserts value. Implementations that cannot accept insertions
	// return [ErrReadOnly].
	Add(value T) error

	// Remove deletes one occurrence of value and reports whether an
	// occurrence was found.
	Remove(value T) bool

	// Values iterates over the elements. The collection must not be
	// mutated while the returned sequence is being consumed.
	Values() iter.Seq[T]
}

// Sequence is a Collection whose elements have significant,
// index-addressable order. Add appends; RemoveAt closes the gap, so the
// relative order of the remaining elements is preserved.
type Sequence[T comparable] interface {
	Collection[T]

	// Get returns the element at index together with a presence flag.
	// Returns the zero value and false when index is out of range.
	Get(index int) (T, bool)

	// Set replaces the element at index.
	// Returns [ErrIndexOutOfRange] when index is out of range.
	Set(index int, value T) error

	// RemoveAt deletes and returns the element at index.
	// Returns [ErrIndexOutOfRange] when index is out of range.
	RemoveAt(index int) (T, error)
}

// Set is a Collection that never holds two equal elements.
type Set[T comparable] interface {
	Collection[T]

	// AddIfAbsent inserts value unless an equal element is already
	// present and reports whether the insertion happened.
	AddIfAbsent(value T) (bool, error)
}

// AsSequence reports whether c additionally satisfies [Sequence] and, if so,
// returns that view. Resolve the capability once per operation, not per
// element.
func AsSequence[T comparable](c Collection[T]) (Sequence[T], bool) {
	s, ok := c.(Sequence[T])
	return s, ok
}

// AsSet reports whether c additionally satisfies [Set] and, if so, returns
// that view.
func AsSet[T comparable](c Collection[T]) (Set[T], bool) {
	s, ok := c.(Set[T])
	return s, ok
}
