package arr

import (
	"github.com/hasbyte1/go-collection-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ContainsAny reports whether items shares at least one element with
// candidates. Empty candidates means false. Few candidates are probed
// directly; many are loaded into a set first so items is scanned only once.
func ContainsAny[T comparable](items, candidates []T) bool {
	if len(candidates) == 0 {
		return false
	}
	if len(candidates) <= collections.DefaultProbeLimit || len(candidates) > len(items) {
		for _, candidate := range candidates {
			if ContainsValue(items, candidate) {
				return true
			}
		}
		return false
	}
	lookup := make(map[T]struct{}, len(candidates))
	for _, candidate := range candidates {
		lookup[candidate] = struct{}{}
	}
	for _, item := range items {
		if _, ok := lookup[item]; ok {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Set semantics
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy returns a new slice with duplicates removed using a key function,
// preserving the first occurrence of each key.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// AddUnique appends value to items only if no equal element is present.
// It returns the resulting slice and whether the append happened.
func AddUnique[T comparable](items []T, value T) ([]T, bool) {
	if ContainsValue(items, value) {
		return items, false
	}
	return append(items, value), true
}

// AddUniqueRange appends every element of values not already present in
// items, in input order, and returns the resulting slice and the count
// appended. Duplicates inside values are appended once. A nil values slice
// means "nothing to add".
func AddUniqueRange[T comparable](items, values []T) ([]T, int) {
	if len(values) == 0 {
		return items, 0
	}
	seen := make(map[T]struct{}, len(items)+len(values))
	for _, item := range items {
		seen[item] = struct{}{}
	}
	added := 0
	for _, value := range values {
		if _, dup := seen[value]; dup {
			continue
		}
		items = append(items, value)
		seen[value] = struct{}{}
		added++
	}
	return items, added
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal
// ─────────────────────────────────────────────────────────────────────────────

// RemoveWhere removes every element for which fn returns true, compacting in
// place, and returns the shortened slice and the count removed. Survivors
// keep their relative order; the vacated tail is zeroed for GC.
func RemoveWhere[T any](items []T, fn func(T) bool) ([]T, int) {
	idx := 0
	for _, item := range items {
		if fn(item) {
			continue
		}
		items[idx] = item
		idx++
	}
	removed := len(items) - idx
	clear(items[idx:])
	return items[:idx], removed
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle reorders items in place into a uniformly random permutation
// (single Fisher–Yates pass; the draw range includes the current index, so a
// self-swap is a legal outcome). Slices of length 0 or 1 are left untouched.
// Without an explicit src the shared [collections.DefaultSource] is used.
func Shuffle[T any](items []T, src ...collections.Source) {
	if len(items) < 2 {
		return
	}
	r := collections.DefaultSource
	if len(src) > 0 && src[0] != nil {
		r = src[0]
	}
	for i := len(items) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffled returns a randomly shuffled copy of items, leaving items
// untouched.
func Shuffled[T any](items []T, src ...collections.Source) []T {
	out := make([]T, len(items))
	copy(out, items)
	Shuffle(out, src...)
	return out
}

// Random returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned.
func Random[T any](items []T, n int, src ...collections.Source) []T {
	out := Shuffled(items, src...)
	if n >= len(out) {
		return out
	}
	if n < 0 {
		n = 0
	}
	return out[:n]
}
