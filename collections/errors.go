package collections

import "errors"

// Sentinel errors returned by the collection types and algorithms.
var (
	// ErrNilCollection is returned when a required collection argument
	// is nil. The operation is not attempted.
	ErrNilCollection = errors.New("collections: nil collection")

	// ErrNilPredicate is returned by RemoveWhere when the predicate is nil.
	ErrNilPredicate = errors.New("collections: nil predicate")

	// ErrReadOnly is returned when an insertion targets a read-only
	// collection, such as a view produced by Freeze.
	ErrReadOnly = errors.New("collections: collection is read-only")

	// ErrIndexOutOfRange is returned when an index is outside
	// [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")
)
