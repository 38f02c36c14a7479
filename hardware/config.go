// Package hardware maps the sumcheck multiplication counts onto a machine
// model: a bank of identical modular multipliers running in lockstep rounds
// at a fixed clock, fed from on-chip SRAM over a host link.
package hardware

import (
	"fmt"

	"github.com/PolyhedraZK/gkr-accel/utils"
)

// Config describes the accelerator under evaluation.
type Config struct {
	// NbMultipliers is the number of parallel multiplier units.
	NbMultipliers int
	// CyclesPerMul is the latency of one large-integer multiplication.
	CyclesPerMul int
	// ClockHz is the system clock rate.
	ClockHz float64
}

// DefaultConfig returns the reference design point used throughout the
// feasibility discussion.
func DefaultConfig() Config {
	return Config{
		NbMultipliers: DefaultNbMultipliers,
		CyclesPerMul:  DefaultCyclesPerMul,
		ClockHz:       DefaultClockHz,
	}
}

// Validate rejects non-positive parameters.
func (c Config) Validate() error {
	if c.NbMultipliers <= 0 {
		return fmt.Errorf("%w: multiplier count must be positive, got %d", utils.ErrInvalidInput, c.NbMultipliers)
	}
	if c.CyclesPerMul <= 0 {
		return fmt.Errorf("%w: cycles per multiplication must be positive, got %d", utils.ErrInvalidInput, c.CyclesPerMul)
	}
	if c.ClockHz <= 0 {
		return fmt.Errorf("%w: clock frequency must be positive, got %v", utils.ErrInvalidInput, c.ClockHz)
	}
	return nil
}
