// Command linfit is the demo binary for the linfit library: it simulates a
// small linear dataset, fits it with the solver you pick, prints the
// recovered coefficients, and optionally renders a chart.
//
// Usage:
//
//	linfit fit     --n 50 --slope 2 --intercept 5 --noise 1 --seed 42 --plot fit.png
//	linfit descend --rate 0.05 --iters 1000 --plot loss.png
//	linfit lasso   --lambda 0.2
//
// Simulation and charting are plain library calls (gonum distuv and
// gonum/plot); all numeric work happens in the linfit packages.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linfit",
	Short: "Fit simulated linear data and inspect how the fit was reached",
	Long: `linfit simulates y = slope·x + intercept + N(0, noise), fits the data
with the closed-form solver, gradient descent, or the lasso, and reports
the recovered coefficients next to the simulated truth.`,
	SilenceUsage: true,
}

// Shared simulation flags, registered on the root so every subcommand
// inherits one consistent dataset definition.
var (
	flagN         int
	flagSlope     float64
	flagIntercept float64
	flagNoise     float64
	flagSeed      uint64
	flagPlot      string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagN, "n", 50, "number of simulated observations")
	pf.Float64Var(&flagSlope, "slope", 2, "true slope of the simulated line")
	pf.Float64Var(&flagIntercept, "intercept", 5, "true intercept of the simulated line")
	pf.Float64Var(&flagNoise, "noise", 1, "standard deviation of the Gaussian noise")
	pf.Uint64Var(&flagSeed, "seed", 42, "random seed for the simulation")
	pf.StringVar(&flagPlot, "plot", "", "write a PNG chart to this path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
