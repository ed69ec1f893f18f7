package collections

// AddUnique inserts value into c only if no equal element is already present
// and reports whether the insertion happened.
//
// When c satisfies [Set], the check-and-insert delegates to the native
// [Set.AddIfAbsent] primitive (amortized O(1)); otherwise a full membership
// scan precedes the insert (O(n)).
//
// A false result with a nil error means the value was already present — a
// valid outcome, distinct from a failed insertion such as [ErrReadOnly].
func AddUnique[T comparable](c Collection[T], value T) (bool, error) {
	if c == nil {
		return false, ErrNilCollection
	}
	if set, ok := AsSet[T](c); ok {
		return set.AddIfAbsent(value)
	}
	if c.Contains(value) {
		return false, nil
	}
	if err := c.Add(value); err != nil {
		return false, err
	}
	return true, nil
}

// AddUniqueRange inserts every element of values into c that is not already
// present, in input order, and returns the count actually inserted.
// Duplicates inside values are inserted once. A nil or empty values slice
// means "nothing to add" and returns 0 without error.
//
// When c satisfies [Set] each candidate goes through the native add-if-absent
// primitive. Otherwise the destination's elements are snapshotted into a
// temporary set once, and every inserted candidate is recorded there, so the
// whole batch costs O(n+m) rather than one membership scan per candidate.
//
// If an insertion fails partway, the count of elements inserted before the
// failure is returned alongside the error; prior insertions are not rolled
// back.
func AddUniqueRange[T comparable](c Collection[T], values []T) (int, error) {
	if c == nil {
		return 0, ErrNilCollection
	}
	if len(values) == 0 {
		return 0, nil
	}

	if set, ok := AsSet[T](c); ok {
		added := 0
		for _, value := range values {
			ok, err := set.AddIfAbsent(value)
			if err != nil {
				return added, err
			}
			if ok {
				added++
			}
		}
		return added, nil
	}

	seen := make(map[T]struct{}, c.Count()+len(values))
	for item := range c.Values() {
		seen[item] = struct{}{}
	}
	added := 0
	for _, value := range values {
		if _, dup := seen[value]; dup {
			continue
		}
		if err := c.Add(value); err != nil {
			return added, err
		}
		seen[value] = struct{}{}
		added++
	}
	return added, nil
}
