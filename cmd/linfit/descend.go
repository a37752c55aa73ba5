// Command linfit: the gradient-descent subcommand.
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linfit/descent"
)

var (
	flagRate  float64
	flagIters int
)

var descendCmd = &cobra.Command{
	Use:   "descend",
	Short: "Fit the simulated line iteratively and report the loss trajectory",
	RunE:  runDescend,
}

func init() {
	descendCmd.Flags().Float64Var(&flagRate, "rate", descent.DefaultLearnRate, "learning rate")
	descendCmd.Flags().IntVar(&flagIters, "iters", descent.DefaultIterations, "iteration count")
	rootCmd.AddCommand(descendCmd)
}

func runDescend(cmd *cobra.Command, _ []string) error {
	X, y, err := simulateLine(flagN, flagSlope, flagIntercept, flagNoise, flagSeed)
	if err != nil {
		return err
	}

	beta, history, err := descent.Run(X, y, descent.Options{
		LearnRate:  flagRate,
		Iterations: flagIters,
	})
	if err != nil {
		return err
	}

	cmd.Printf("truth:  intercept=%.4f slope=%.4f\n", flagIntercept, flagSlope)
	cmd.Printf("fitted: intercept=%.4f slope=%.4f\n", beta[0], beta[1])
	if len(history) > 0 {
		first, last := history[0].Loss, history[len(history)-1].Loss
		cmd.Printf("loss: first=%.6f last=%.6f", first, last)
		if last > first {
			cmd.Printf("  (diverged — lower --rate)")
		}
		cmd.Printf("\n")
	}

	if flagPlot != "" && len(history) > 0 {
		if err := saveLossChart(history, flagPlot); err != nil {
			return err
		}
		cmd.Printf("chart written to %s\n", flagPlot)
	}

	return nil
}
