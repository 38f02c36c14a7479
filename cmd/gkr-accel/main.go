// gkr-accel prints feasibility estimates for a GKR sumcheck accelerator.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	gkraccel "github.com/PolyhedraZK/gkr-accel"
	"github.com/PolyhedraZK/gkr-accel/calibrate"
	"github.com/PolyhedraZK/gkr-accel/hardware"
)

var (
	flagGates     int
	flagLayers    int
	flagMuls      int
	flagCycles    int
	flagClockMHz  float64
	flagCalibrate bool
	flagJSON      bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "gkr-accel",
	Short: "GKR sumcheck accelerator cost model",
	Long: `Estimates multiplications, cycles, wall-clock time and bandwidth for
running the linear-time GKR sumcheck on a bank of parallel multipliers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagQuiet {
			logger.Disable()
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}

		cfg := hardware.Config{
			NbMultipliers: flagMuls,
			CyclesPerMul:  flagCycles,
			ClockHz:       flagClockMHz * 1e6,
		}
		if flagCalibrate {
			ns := calibrate.FieldMulNsPerOp(1 << 20)
			cfg.CyclesPerMul = calibrate.EffectiveCyclesPerMul(ns, cfg.ClockHz)
			fmt.Printf("calibrated: %.1f ns per field mul on this host, %d cycles at %.0f MHz\n",
				ns, cfg.CyclesPerMul, flagClockMHz)
		}

		est, err := gkraccel.NewEstimate(gkraccel.CircuitShape{
			NbLayers:      flagLayers,
			GatesPerLayer: flagGates,
		}, cfg)
		if err != nil {
			return err
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(est)
		}
		est.Print()
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagGates, "gates", 1024, "gates per layer (power of two)")
	rootCmd.Flags().IntVar(&flagLayers, "layers", 100, "number of circuit layers")
	rootCmd.Flags().IntVar(&flagMuls, "multipliers", hardware.DefaultNbMultipliers, "parallel multiplier units")
	rootCmd.Flags().IntVar(&flagCycles, "cycles-per-mul", hardware.DefaultCyclesPerMul, "cycle latency of one multiplication")
	rootCmd.Flags().Float64Var(&flagClockMHz, "clock-mhz", hardware.DefaultClockHz/1e6, "clock frequency in MHz")
	rootCmd.Flags().BoolVar(&flagCalibrate, "calibrate", false, "derive cycles-per-mul from a host CPU measurement")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the estimate as JSON")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "suppress log output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
