package collections

// RemoveWhere removes every element of c for which pred returns true and
// returns the number removed. The predicate is invoked exactly once per
// element present at the start of the call; on an empty collection it is
// never invoked at all.
//
// When c satisfies [Sequence] the scan runs from the last index to the
// first, removing matches as it goes — walking backward keeps the indices
// still to be visited stable, so no temporary buffer is needed and the
// surviving elements keep their relative order. Otherwise matches are
// collected during iteration and removed afterwards through the weak
// [Collection.Remove], since mutating a collection mid-iteration is
// undefined for most implementations. One removal per recorded match is
// exact because the predicate's verdict depends only on the value.
//
// A zero count with a nil error means nothing matched — a valid outcome,
// distinct from a reported failure.
func RemoveWhere[T comparable](c Collection[T], pred func(T) bool) (int, error) {
	if c == nil {
		return 0, ErrNilCollection
	}
	if pred == nil {
		return 0, ErrNilPredicate
	}
	if c.Count() == 0 {
		return 0, nil
	}

	if seq, ok := AsSequence[T](c); ok {
		removed := 0
		for i := seq.Count() - 1; i >= 0; i-- {
			item, ok := seq.Get(i)
			if !ok {
				return removed, ErrIndexOutOfRange
			}
			if !pred(item) {
				continue
			}
			if _, err := seq.RemoveAt(i); err != nil {
				return removed, err
			}
			removed++
		}
		return removed, nil
	}

	var matched []T
	for item := range c.Values() {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	removed := 0
	for _, item := range matched {
		if c.Remove(item) {
			removed++
		}
	}
	return removed, nil
}
