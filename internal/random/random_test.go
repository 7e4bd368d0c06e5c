package random_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lyn1194/hsk1-app/internal/random"
)

func TestShuffle_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	random.Shuffle(rng, s)

	seen := make(map[int]bool)
	for _, v := range s {
		seen[v] = true
	}
	assert.Len(t, seen, 8)
}

func TestShuffle_SingleAndEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	empty := []string{}
	random.Shuffle(rng, empty)
	assert.Empty(t, empty)

	one := []string{"x"}
	random.Shuffle(rng, one)
	assert.Equal(t, []string{"x"}, one)
}

// TestShuffle_Uniformity runs a chi-square test over position/value counts
// for n=5. With 5000 trials each of the 25 cells expects 1000 hits; the
// statistic stays far below the 0.001 critical value (51.18, 24 df) for a
// uniform shuffle.
func TestShuffle_Uniformity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	const n = 5
	const trials = 5000
	var counts [n][n]int

	for i := 0; i < trials; i++ {
		s := []int{0, 1, 2, 3, 4}
		random.Shuffle(rng, s)
		for pos, v := range s {
			counts[pos][v]++
		}
	}

	expected := float64(trials) / n
	chi2 := 0.0
	for pos := 0; pos < n; pos++ {
		for v := 0; v < n; v++ {
			d := float64(counts[pos][v]) - expected
			chi2 += d * d / expected
		}
	}

	assert.Less(t, chi2, 51.18, "shuffle distribution is not uniform (chi2=%f)", chi2)
}

func TestPerm_Bijection(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	order := random.Perm(rng, 15)
	require.Len(t, order, 15)

	seen := make([]bool, 15)
	for _, idx := range order {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 15)
		require.False(t, seen[idx], "index %d appears twice", idx)
		seen[idx] = true
	}
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	v, ok := random.Pick(rng, []string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Contains(t, []string{"a", "b", "c"}, v)

	_, ok = random.Pick(rng, []string{})
	assert.False(t, ok)
}

func TestPick_CoversAllElements(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		v, ok := random.Pick(rng, []string{"a", "b", "c"})
		require.True(t, ok)
		seen[v]++
	}
	assert.Len(t, seen, 3)
}
