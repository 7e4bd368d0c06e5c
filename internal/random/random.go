// Package random provides the uniform shuffle and pick primitives shared by
// every drill mode. Callers supply the *rand.Rand so tests can seed it.
package random

import "math/rand"

// Shuffle permutes s in place with a Fisher-Yates walk from the last index
// down, swapping each position with a uniformly chosen index in [0, i].
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Perm returns a fresh uniformly random permutation of [0, n).
func Perm(rng *rand.Rand, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	Shuffle(rng, order)
	return order
}

// Pick returns one uniformly chosen element of s.
// The second return is false when s is empty.
func Pick[T any](rng *rand.Rand, s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[rng.Intn(len(s))], true
}
