// Command linfit: chart rendering. Thin glue over gonum/plot; nothing here
// computes — it only draws what the solvers returned.
package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linfit/descent"
	"github.com/katalvlaran/linfit/matrix"
)

// saveFitChart renders the simulated points and the fitted line
// ŷ = beta[0] + beta[1]·x to path as a PNG.
func saveFitChart(X *matrix.Dense, y, beta []float64, path string) error {
	p := plot.New()
	p.Title.Text = "linfit: closed-form fit"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, len(y))
	for i := range y {
		x, err := X.At(i, 0)
		if err != nil {
			return err
		}
		pts[i].X, pts[i].Y = x, y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}

	line := plotter.NewFunction(func(x float64) float64 { return beta[0] + beta[1]*x })
	p.Add(scatter, line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// saveLossChart renders the gradient-descent loss trajectory to path.
func saveLossChart(history []descent.Step, path string) error {
	p := plot.New()
	p.Title.Text = "linfit: gradient-descent loss"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "loss"

	pts := make(plotter.XYs, len(history))
	for i, step := range history {
		pts[i].X, pts[i].Y = float64(i+1), step.Loss
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
