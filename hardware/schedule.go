package hardware

import (
	"github.com/PolyhedraZK/gkr-accel/sumcheck"
	"github.com/PolyhedraZK/gkr-accel/utils"
)

// RoundsPerLayer counts the lockstep multiplier rounds needed for one layer.
//
// Table construction has no intra-phase dependency, so its multiplications
// are issued as one batch. The two sumcheck phases fold round by round: round
// i of a phase over v variables has 2^(v-1-i) multiplications that must
// complete before round i+1 starts, so each round is scheduled on its own. A
// partially filled round still occupies every unit for the full latency.
func RoundsPerLayer(cost sumcheck.LayerCost, nbMultipliers int) int {
	rounds := utils.CeilDiv(cost.TableMuls(), nbMultipliers)
	rounds += phaseRounds(cost.NbVars, nbMultipliers)
	rounds += phaseRounds(cost.NbVars, nbMultipliers)
	return rounds
}

func phaseRounds(nbVars, nbMultipliers int) int {
	rounds := 0
	for i := 0; i < nbVars; i++ {
		rounds += utils.CeilDiv(1<<i, nbMultipliers)
	}
	return rounds
}

// CyclesPerLayer converts multiplier rounds to clock cycles.
func CyclesPerLayer(cost sumcheck.LayerCost, cfg Config) int {
	return RoundsPerLayer(cost, cfg.NbMultipliers) * cfg.CyclesPerMul
}

// LayerSeconds converts a cycle count to wall-clock time.
func LayerSeconds(cycles int, clockHz float64) float64 {
	return float64(cycles) / clockHz
}

// TotalSeconds scales the per-layer time to the whole circuit. Every layer
// is assumed to have the same shape.
func TotalSeconds(nbLayers int, layerSeconds float64) float64 {
	return float64(nbLayers) * layerSeconds
}
