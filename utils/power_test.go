package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []int{1, 2, 4, 1024, 1 << 30} {
		require.True(t, IsPowerOfTwo(x), "x=%d", x)
	}
	for _, x := range []int{0, -1, -2, 3, 1000, 1<<30 + 1} {
		require.False(t, IsPowerOfTwo(x), "x=%d", x)
	}
}

func TestLog2(t *testing.T) {
	require.Equal(t, 0, Log2(1))
	require.Equal(t, 1, Log2(2))
	require.Equal(t, 10, Log2(1024))
	require.Panics(t, func() { Log2(1000) })
}

func TestCeilDiv(t *testing.T) {
	require.Equal(t, 0, CeilDiv(0, 10))
	require.Equal(t, 1, CeilDiv(1, 10))
	require.Equal(t, 1, CeilDiv(10, 10))
	require.Equal(t, 2, CeilDiv(11, 10))
	require.Equal(t, 128, CeilDiv(1280, 10))
}

func TestNextPowerOfTwo(t *testing.T) {
	require.Equal(t, 2, NextPowerOfTwo(1))
	require.Equal(t, 2, NextPowerOfTwo(2))
	require.Equal(t, 4, NextPowerOfTwo(3))
	require.Equal(t, 1024, NextPowerOfTwo(1000))
	require.Equal(t, 1024, NextPowerOfTwo(1024))
}
