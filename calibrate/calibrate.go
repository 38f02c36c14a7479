// Package calibrate grounds the hardware model against a software baseline:
// it times BN254 scalar multiplications on the host CPU and expresses the
// result as an effective cycles-per-multiplication at a given clock.
package calibrate

import (
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// sink keeps the timed loop from being optimized away.
var sink fr.Element

// FieldMulNsPerOp measures the average wall-clock nanoseconds of one
// fr.Element multiplication over n iterations.
func FieldMulNsPerOp(n int) float64 {
	if n <= 0 {
		n = 1 << 20
	}
	var a, b fr.Element
	if _, err := a.SetRandom(); err != nil {
		panic(err)
	}
	if _, err := b.SetRandom(); err != nil {
		panic(err)
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		a.Mul(&a, &b)
	}
	elapsed := time.Since(start)
	sink = a
	return float64(elapsed.Nanoseconds()) / float64(n)
}

// EffectiveCyclesPerMul converts a measured latency to cycles at clockHz,
// rounding up so the hardware model never undercounts.
func EffectiveCyclesPerMul(nsPerOp, clockHz float64) int {
	if nsPerOp <= 0 || clockHz <= 0 {
		return 0
	}
	cycles := nsPerOp * clockHz / 1e9
	n := int(cycles)
	if float64(n) < cycles {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
