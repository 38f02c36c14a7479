// Package gkraccel estimates whether a fixed-function accelerator can keep
// up with the GKR prover's linear-time sumcheck. It combines the per-layer
// multiplication model from the sumcheck package with the machine model from
// the hardware package and reports cycles, wall-clock time and the bandwidth
// the design must sustain.
package gkraccel

import (
	"fmt"

	"github.com/consensys/gnark/logger"

	"github.com/PolyhedraZK/gkr-accel/hardware"
	"github.com/PolyhedraZK/gkr-accel/sumcheck"
	"github.com/PolyhedraZK/gkr-accel/utils"
)

// CircuitShape describes a layered circuit for estimation purposes. All
// layers are assumed to have the same gate count.
type CircuitShape struct {
	NbLayers      int
	GatesPerLayer int
}

// Validate rejects non-positive layer counts; the gate count is checked by
// the sumcheck cost model.
func (s CircuitShape) Validate() error {
	if s.NbLayers <= 0 {
		return fmt.Errorf("%w: layer count must be positive, got %d", utils.ErrInvalidInput, s.NbLayers)
	}
	return nil
}

// Estimate is the full feasibility picture for one (shape, hardware) pair.
type Estimate struct {
	Shape    CircuitShape
	Hardware hardware.Config

	LayerCost      sumcheck.LayerCost
	RoundsPerLayer int
	CyclesPerLayer int
	TotalMuls      int

	LayerSeconds float64
	TotalSeconds float64

	BytesPerLayer int64
	BandwidthBps  float64
}

// NewEstimate runs the cost model for the given circuit shape and hardware
// configuration.
func NewEstimate(shape CircuitShape, cfg hardware.Config) (*Estimate, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cost, err := sumcheck.CostOfLayer(shape.GatesPerLayer)
	if err != nil {
		return nil, err
	}

	e := &Estimate{
		Shape:          shape,
		Hardware:       cfg,
		LayerCost:      cost,
		RoundsPerLayer: hardware.RoundsPerLayer(cost, cfg.NbMultipliers),
		TotalMuls:      cost.TotalMuls() * shape.NbLayers,
		BytesPerLayer:  hardware.BytesPerLayer(cost),
	}
	e.CyclesPerLayer = hardware.CyclesPerLayer(cost, cfg)
	e.LayerSeconds = hardware.LayerSeconds(e.CyclesPerLayer, cfg.ClockHz)
	e.TotalSeconds = hardware.TotalSeconds(shape.NbLayers, e.LayerSeconds)
	e.BandwidthBps = hardware.RequiredBandwidthBps(e.BytesPerLayer, e.LayerSeconds)

	log := logger.Logger()
	log.Info().
		Int("layers", shape.NbLayers).
		Int("gatesPerLayer", shape.GatesPerLayer).
		Int("mulsPerLayer", cost.TotalMuls()).
		Int("cyclesPerLayer", e.CyclesPerLayer).
		Float64("totalSeconds", e.TotalSeconds).
		Msg("estimated")
	return e, nil
}

// LinkBound reports whether the host link can sustain the required
// per-layer bandwidth.
func (e *Estimate) LinkBound() bool {
	return e.BandwidthBps > hardware.LinkBandwidthBps
}
