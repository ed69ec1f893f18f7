package collections

// DefaultProbeLimit is the candidate count up to which [ContainsAny] probes
// the collection directly instead of building a temporary candidate set. It
// is a constant-factor tuning default, not a behavioural contract — both
// strategies return identical results. Use [ContainsAnyWithLimit] to pick a
// different crossover.
const DefaultProbeLimit = 10

// ContainsAny reports whether c shares at least one element with candidates.
// Empty candidates means false, with no scan of c.
//
// The strategy is chosen by cost, not semantics:
//
//   - c satisfies [Set]: each candidate goes through the native membership
//     check, amortized O(1) apiece.
//   - few candidates (≤ [DefaultProbeLimit]) or more candidates than
//     elements: each candidate is probed with the weak Contains — O(n) per
//     probe, but few probes.
//   - otherwise: the candidates are loaded into a temporary set once (O(m))
//     and c is scanned once against it (O(n)), instead of m separate scans.
func ContainsAny[T comparable](c Collection[T], candidates []T) (bool, error) {
	return ContainsAnyWithLimit(c, candidates, DefaultProbeLimit)
}

// ContainsAnyWithLimit is [ContainsAny] with an explicit crossover: up to
// probeLimit candidates are probed directly against c before the temporary
// candidate set is preferred. Any probeLimit yields the same result; only
// the constant-factor cost differs.
func ContainsAnyWithLimit[T comparable](c Collection[T], candidates []T, probeLimit int) (bool, error) {
	if c == nil {
		return false, ErrNilCollection
	}
	if len(candidates) == 0 {
		return false, nil
	}

	if set, ok := AsSet[T](c); ok {
		for _, candidate := range candidates {
			if set.Contains(candidate) {
				return true, nil
			}
		}
		return false, nil
	}

	if len(candidates) <= probeLimit || len(candidates) > c.Count() {
		for _, candidate := range candidates {
			if c.Contains(candidate) {
				return true, nil
			}
		}
		return false, nil
	}

	lookup := make(map[T]struct{}, len(candidates))
	for _, candidate := range candidates {
		lookup[candidate] = struct{}{}
	}
	for item := range c.Values() {
		if _, ok := lookup[item]; ok {
			return true, nil
		}
	}
	return false, nil
}
