package utils

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns log2(x) for a positive power of two x.
// It panics otherwise; callers validate with IsPowerOfTwo first.
func Log2(x int) int {
	if !IsPowerOfTwo(x) {
		panic("Log2: not a power of two")
	}
	k := 0
	for x > 1 {
		x >>= 1
		k++
	}
	return k
}

// CeilDiv returns ceil(a/b) for a >= 0, b > 0.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}

func NextPowerOfTwo(x int) int {
	// pad to 2^n gates, n>=1
	padk := 1
	for x > (1 << padk) {
		padk++
	}
	return 1 << padk
}
