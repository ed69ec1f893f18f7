// Package collections provides generic algorithms over mutable collections —
// random permutation, duplicate-free insertion, predicate-driven removal and
// membership-intersection testing — together with the container types that
// carry them.
//
// # Capabilities
//
// Algorithms accept the weakest interface that can support them and probe,
// once per call, for a stronger capability they can exploit:
//
//   - [Collection][T] — count, membership, add, remove-one, iteration.
//   - [Sequence][T] — a Collection with significant, index-addressable order.
//   - [Set][T] — a Collection that never holds two equal elements and offers
//     an add-if-absent primitive.
//
// [AddUnique], [AddUniqueRange] and [ContainsAny] take the O(1)-amortized
// native path when [AsSet] succeeds and fall back to the generic O(n)
// algorithm otherwise; [RemoveWhere] prefers the backward index scan that
// [AsSequence] makes possible. Any type that declares the capability gets
// the fast path — there is no list of blessed concrete types.
//
// # Containers
//
// Three implementations ship with the package: [ArrayList] (slice-backed,
// order-preserving), [HashSet] (hash-backed, unordered) and [TreeSet]
// (B-tree-backed, iterates in ascending order). [Freeze] wraps any of them
// in a read-only view.
//
//	list := collections.NewArrayList(1, 2, 3, 4, 5)
//	removed, _ := collections.RemoveWhere[int](list, func(n int) bool { return n%2 == 0 })
//	// removed == 2, list.All() == [1 3 5]
//
//	set := collections.NewHashSet("a", "b")
//	added, _ := collections.AddUniqueRange[string](set, []string{"b", "c", "c"})
//	// added == 1
//
// # Randomness
//
// [Shuffle] and [Shuffled] draw from a shared, thread-safe math/rand/v2
// generator by default. Pass a [Source] — for instance a seeded *rand.Rand —
// for deterministic behaviour:
//
//	r := rand.New(rand.NewPCG(1, 2))
//	collections.Shuffle[int](list, r)
//
// # Concurrency
//
// No function in this package protects a collection against concurrent
// mutation. Each call assumes single-writer access to the collection it was
// handed; callers sharing an instance across goroutines must lock around it.
package collections
