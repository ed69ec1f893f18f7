// Package arr provides standalone, framework-agnostic helper functions for
// plain Go slices — no wrapper type required.
//
// The randomisation and set-semantics helpers mirror the capability-based
// algorithms in the collections package for callers who hold a bare []T:
//
//	arr.Shuffle(deck)                          // in place, shared source
//	arr.Shuffle(deck, seeded)                  // in place, injected source
//	hand := arr.Shuffled(deck)                 // copy, original untouched
//
//	ids, ok := arr.AddUnique(ids, 42)          // append only if absent
//	ids, n := arr.AddUniqueRange(ids, more)    // n = distinct values added
//
//	evens, n := arr.RemoveWhere(ns, func(n int) bool { return n%2 == 0 })
//	hit := arr.ContainsAny(ns, candidates)
//
// Slice-returning helpers follow the append contract: use the returned
// slice, the argument's backing array may have been reused.
package arr
