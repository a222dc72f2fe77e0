package soix

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowerBound(t *testing.T) {
	a := []int{1, 4, 6, 9, 10}
	require.Equal(t, 0, lowerBound(a, 0))
	require.Equal(t, 0, lowerBound(a, 1))
	require.Equal(t, 1, lowerBound(a, 3))
	require.Equal(t, 1, lowerBound(a, 4))
	require.Equal(t, 2, lowerBound(a, 5))
	require.Equal(t, 2, lowerBound(a, 6))
	require.Equal(t, 4, lowerBound(a, 10))
	require.Equal(t, 5, lowerBound(a, 11))
	require.Equal(t, 0, lowerBound([]int{}, 42))
}

func TestLowerBoundRandom(t *testing.T) {
	for round := 0; round < 1024; round++ {
		a := make([]uint16, rand.IntN(64))
		for i := range a {
			a[i] = uint16(rand.UintN(256))
		}
		slices.Sort(a)
		v := uint16(rand.UintN(256))
		i := lowerBound(a, v)
		for j := 0; j < i; j++ {
			require.Less(t, a[j], v)
		}
		if i < len(a) {
			require.GreaterOrEqual(t, a[i], v)
		}
	}
}
