package gkraccel

import (
	"fmt"
	"io"
	"os"
)

// Fprint writes a human-readable summary of the estimate.
func (e *Estimate) Fprint(w io.Writer) {
	us := func(seconds float64) float64 { return seconds * 1e6 }

	fmt.Fprintf(w, "Circuit: %d layers x %d gates (%d variables, split %d/%d)\n",
		e.Shape.NbLayers, e.Shape.GatesPerLayer, e.LayerCost.NbVars, e.LayerCost.FirstHalf, e.LayerCost.SecondHalf)
	fmt.Fprintf(w, "Hardware: %d multipliers, %d cycles/mul, %.0f MHz\n",
		e.Hardware.NbMultipliers, e.Hardware.CyclesPerMul, e.Hardware.ClockHz/1e6)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%10d | bookkeeping table muls (%d + %d + %d)\n",
		e.LayerCost.TableMuls(), e.LayerCost.TableFirstHalf, e.LayerCost.TableSecondHalf, e.LayerCost.TableCross)
	fmt.Fprintf(w, "%10d | sumcheck phase one muls\n", e.LayerCost.PhaseOneMuls)
	fmt.Fprintf(w, "%10d | sumcheck phase two muls\n", e.LayerCost.PhaseTwoMuls)
	fmt.Fprintf(w, "%10d | total muls per layer\n", e.LayerCost.TotalMuls())
	fmt.Fprintf(w, "%10d | total muls for all layers\n", e.TotalMuls)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%10d | multiplier rounds per layer\n", e.RoundsPerLayer)
	fmt.Fprintf(w, "%10d | cycles per layer\n", e.CyclesPerLayer)
	fmt.Fprintf(w, "%10.3f | microseconds per layer\n", us(e.LayerSeconds))
	fmt.Fprintf(w, "%10.3f | microseconds total\n", us(e.TotalSeconds))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%10d | bytes streamed per layer\n", e.BytesPerLayer)
	fmt.Fprintf(w, "%10.3f | Gbps required\n", e.BandwidthBps/1e9)
	if e.LinkBound() {
		fmt.Fprintf(w, "host link cannot sustain the required bandwidth\n")
	}
}

func (e *Estimate) Print() {
	e.Fprint(os.Stdout)
}
