// Command linfit: the closed-form subcommand.
package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linfit/metrics"
	"github.com/katalvlaran/linfit/ols"
)

var flagRidge float64

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the simulated line exactly, via the normal equations",
	RunE:  runFit,
}

func init() {
	fitCmd.Flags().Float64Var(&flagRidge, "ridge", 0, "L2 penalty strength (0 = plain OLS)")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, _ []string) error {
	X, y, err := simulateLine(flagN, flagSlope, flagIntercept, flagNoise, flagSeed)
	if err != nil {
		return err
	}

	var opts []ols.Option
	if flagRidge > 0 {
		opts = append(opts, ols.WithRidge(flagRidge))
	}
	beta, err := ols.Fit(X, y, opts...)
	if err != nil {
		return err
	}

	yhat, err := ols.Predict(X, beta)
	if err != nil {
		return err
	}
	r2, err := metrics.R2(y, yhat)
	if err != nil {
		return err
	}
	resid := make([]float64, len(y))
	for i := range y {
		resid[i] = y[i] - yhat[i]
	}

	cmd.Printf("truth:  intercept=%.4f slope=%.4f\n", flagIntercept, flagSlope)
	cmd.Printf("fitted: intercept=%.4f slope=%.4f\n", beta[0], beta[1])
	cmd.Printf("R²=%.4f residual mean=%.4f sd=%.4f\n",
		r2, stat.Mean(resid, nil), stat.StdDev(resid, nil))

	if flagPlot != "" {
		if err := saveFitChart(X, y, beta, flagPlot); err != nil {
			return err
		}
		cmd.Printf("chart written to %s\n", flagPlot)
	}

	return nil
}
