package collections

import (
	"fmt"
	"iter"
)

// ArrayList is a slice-backed [Sequence]: insertion order is significant and
// survives removals (remaining elements keep their relative order).
//
// The zero value is ready to use. ArrayList is not safe for concurrent use.
type ArrayList[T comparable] struct {
	items []T
}

// Compile-time capability checks.
var (
	_ Sequence[int] = (*ArrayList[int])(nil)
)

// NewArrayList creates an ArrayList from a variadic list of items (copied).
func NewArrayList[T comparable](items ...T) *ArrayList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ArrayList[T]{items: dst}
}

// ArrayListFrom creates an ArrayList from a slice (the slice is copied).
func ArrayListFrom[T comparable](items []T) *ArrayList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ArrayList[T]{items: dst}
}

// Count returns the number of elements.
func (l *ArrayList[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no elements.
func (l *ArrayList[T]) IsEmpty() bool { return len(l.items) == 0 }

// Contains reports whether value is present. O(n).
func (l *ArrayList[T]) Contains(value T) bool {
	for _, item := range l.items {
		if item == value {
			return true
		}
	}
	return false
}

// Add appends value to the end of the list. It never fails.
func (l *ArrayList[T]) Add(value T) error {
	l.items = append(l.items, value)
	return nil
}

// Append appends any number of values to the end of the list.
func (l *ArrayList[T]) Append(values ...T) {
	l.items = append(l.items, values...)
}

// Remove deletes the first occurrence of value, preserving the order of the
// remaining elements, and reports whether an occurrence was found.
func (l *ArrayList[T]) Remove(value T) bool {
	for i, item := range l.items {
		if item == value {
			l.removeIndex(i)
			return true
		}
	}
	return false
}

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *ArrayList[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Set replaces the element at index.
// Returns [ErrIndexOutOfRange] when index is out of range.
func (l *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d with count %d", ErrIndexOutOfRange, index, len(l.items))
	}
	l.items[index] = value
	return nil
}

// RemoveAt deletes and returns the element at index, shifting later elements
// left. Returns [ErrIndexOutOfRange] when index is out of range.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, fmt.Errorf("%w: %d with count %d", ErrIndexOutOfRange, index, len(l.items))
	}
	removed := l.items[index]
	l.removeIndex(index)
	return removed, nil
}

func (l *ArrayList[T]) removeIndex(index int) {
	copy(l.items[index:], l.items[index+1:])
	// release the vacated tail slot for GC
	clear(l.items[len(l.items)-1:])
	l.items = l.items[:len(l.items)-1]
}

// Swap exchanges the elements at indices i and j.
// Out-of-range indices are ignored.
func (l *ArrayList[T]) Swap(i, j int) {
	if i < 0 || i >= len(l.items) || j < 0 || j >= len(l.items) {
		return
	}
	l.items[i], l.items[j] = l.items[j], l.items[i]
}

// Values iterates over the elements in list order.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// All returns a copy of the elements as a plain slice, in list order.
func (l *ArrayList[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Clone returns an independent copy of the list.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	return ArrayListFrom(l.items)
}

// String implements [fmt.Stringer].
func (l *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", l.items)
}
