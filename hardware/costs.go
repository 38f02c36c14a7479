package hardware

import "github.com/PolyhedraZK/gkr-accel/sumcheck"

// Reference design point: ten 256-bit multipliers at 200 MHz, each
// multiplication fully pipelined over 100 cycles.
const DefaultNbMultipliers = 10
const DefaultCyclesPerMul = 100
const DefaultClockHz = 200e6

// FieldElementBytes is the storage size of one BN254 scalar.
const FieldElementBytes = 32

// SRAMBandwidthBps is the sustained on-chip SRAM bandwidth (two 256-bit
// ports per cycle at the default clock).
const SRAMBandwidthBps = 2 * FieldElementBytes * 8 * DefaultClockHz

// LinkBandwidthBps is the sustained host link bandwidth (PCIe gen3 x16).
const LinkBandwidthBps = 16e9 * 8

// BytesPerLayer models the working set streamed per layer: the two half
// bookkeeping tables plus the layer's gate values.
func BytesPerLayer(cost sumcheck.LayerCost) int64 {
	if cost.NbVars == 0 {
		return 0
	}
	elements := int64(1<<cost.FirstHalf) + int64(1<<cost.SecondHalf) + int64(1<<cost.NbVars)
	return elements * FieldElementBytes
}
