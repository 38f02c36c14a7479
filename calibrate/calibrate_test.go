package calibrate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldMulNsPerOp(t *testing.T) {
	ns := FieldMulNsPerOp(1 << 16)
	require.Greater(t, ns, 0.0)
	// a montgomery mul is tens of ns at worst, not microseconds
	require.Less(t, ns, 10000.0)
}

func TestEffectiveCyclesPerMul(t *testing.T) {
	// 50ns at 200MHz is 10 cycles
	require.Equal(t, 10, EffectiveCyclesPerMul(50, 200e6))
	// partial cycles round up
	require.Equal(t, 11, EffectiveCyclesPerMul(51, 200e6))
	// never below one cycle
	require.Equal(t, 1, EffectiveCyclesPerMul(0.1, 200e6))
	require.Equal(t, 0, EffectiveCyclesPerMul(0, 200e6))
	require.Equal(t, 0, EffectiveCyclesPerMul(50, 0))
}
