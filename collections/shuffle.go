package collections

// swapper is the optional fast path for [Shuffle]: sequences that can
// exchange two elements directly (e.g. [ArrayList]) avoid the Get/Set pair
// per step.
type swapper interface {
	Swap(i, j int)
}

// Shuffle reorders seq in place into a uniformly random permutation using a
// single Fisher–Yates pass: walking from the last index down, each element
// is swapped with one drawn uniformly from the positions at or before it.
// The draw range includes the current index — a self-swap is a legal,
// probability-correct outcome, and excluding it would bias the permutation.
//
// O(n) time, O(1) extra space. Sequences of length 0 or 1 are left untouched
// and no random draw is made.
//
// Without an explicit src the shared [DefaultSource] is used; pass a seeded
// [Source] for deterministic results.
func Shuffle[T comparable](seq Sequence[T], src ...Source) error {
	if seq == nil {
		return ErrNilCollection
	}
	n := seq.Count()
	if n < 2 {
		return nil
	}
	r := pickSource(src)

	if sw, ok := seq.(swapper); ok {
		for i := n - 1; i > 0; i-- {
			sw.Swap(i, r.IntN(i+1))
		}
		return nil
	}

	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		if j == i {
			continue
		}
		a, _ := seq.Get(i)
		b, _ := seq.Get(j)
		if err := seq.Set(i, b); err != nil {
			return err
		}
		if err := seq.Set(j, a); err != nil {
			return err
		}
	}
	return nil
}

// Shuffled is the preserve-original counterpart of [Shuffle]: it
// shallow-copies the elements of seq into a new [ArrayList], shuffles the
// copy and returns it. seq itself is never mutated.
func Shuffled[T comparable](seq Sequence[T], src ...Source) (*ArrayList[T], error) {
	if seq == nil {
		return nil, ErrNilCollection
	}
	dup := &ArrayList[T]{items: make([]T, 0, seq.Count())}
	for item := range seq.Values() {
		dup.items = append(dup.items, item)
	}
	if err := Shuffle[T](dup, src...); err != nil {
		return nil, err
	}
	return dup, nil
}
