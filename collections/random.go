package collections

import "math/rand/v2"

// Source supplies the uniformly distributed integers consumed by [Shuffle]
// and [Shuffled]. It is satisfied by *math/rand/v2.Rand, so a seeded
// generator drops straight in:
//
//	r := rand.New(rand.NewPCG(seed1, seed2))
//	collections.Shuffle[int](list, r)
type Source interface {
	// IntN returns a uniformly distributed int in [0, n). n must be > 0.
	IntN(n int) int
}

// sharedSource delegates to the process-wide math/rand/v2 generator, which
// is safe for concurrent use.
type sharedSource struct{}

func (sharedSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is the Source used when the caller does not supply one.
var DefaultSource Source = sharedSource{}

func pickSource(src []Source) Source {
	if len(src) > 0 && src[0] != nil {
		return src[0]
	}
	return DefaultSource
}
