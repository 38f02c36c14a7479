// Package sumcheck models the large-integer multiplication cost of running
// the linear-time sumcheck on one layer of a GKR circuit.
//
// The prover splits the layer's log2(gates) variables into two halves and
// builds sparse bookkeeping tables over each half plus the cross products,
// then runs the two sumcheck phases, halving the live table every round.
// The phase costs are symmetric: both MLEs fold over the same number of
// variables, so each contributes the same geometric series.
package sumcheck

import (
	"fmt"

	"github.com/PolyhedraZK/gkr-accel/utils"
)

// LayerCost is the multiplication breakdown for one layer.
type LayerCost struct {
	// NbVars is log2 of the layer's gate count.
	NbVars     int
	FirstHalf  int
	SecondHalf int

	// bookkeeping table construction
	TableFirstHalf  int
	TableSecondHalf int
	TableCross      int

	// one geometric series per sumcheck phase
	PhaseOneMuls int
	PhaseTwoMuls int
}

// CostOfLayer computes the multiplication breakdown for a layer of
// gatesPerLayer gates. gatesPerLayer must be a positive power of two.
func CostOfLayer(gatesPerLayer int) (LayerCost, error) {
	if !utils.IsPowerOfTwo(gatesPerLayer) {
		return LayerCost{}, fmt.Errorf("%w: gates per layer must be a positive power of two, got %d", utils.ErrInvalidInput, gatesPerLayer)
	}
	nbVars := utils.Log2(gatesPerLayer)
	if nbVars == 0 {
		// a single-gate layer needs no sumcheck at all
		return LayerCost{}, nil
	}
	first := nbVars / 2
	second := nbVars - first
	phase := (1 << nbVars) - 1 // sum of 2^i for i in [0, nbVars)
	return LayerCost{
		NbVars:          nbVars,
		FirstHalf:       first,
		SecondHalf:      second,
		TableFirstHalf:  halfTableMuls(first),
		TableSecondHalf: halfTableMuls(second),
		TableCross:      (1 << first) * (1 << second),
		PhaseOneMuls:    phase,
		PhaseTwoMuls:    phase,
	}, nil
}

// halfTableMuls counts the intra-half combination multiplications needed to
// assemble the bookkeeping table over h variables: each of the 2^h entries
// is a product of h factors, built with h-1 multiplications.
func halfTableMuls(h int) int {
	n := (1 << h) * (h - 1)
	if n < 0 {
		return 0
	}
	return n
}

// TableMuls returns the total cost of bookkeeping table construction.
func (c LayerCost) TableMuls() int {
	return c.TableFirstHalf + c.TableSecondHalf + c.TableCross
}

// TotalMuls returns the total multiplications for one layer.
func (c LayerCost) TotalMuls() int {
	return c.TableMuls() + c.PhaseOneMuls + c.PhaseTwoMuls
}
