// Command linfit: dataset simulation. Thin glue over gonum's distuv — the
// kind of external call the library itself deliberately stays out of.
package main

import (
	randv2 "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linfit/matrix"
)

// simulateLine draws n points with x evenly spaced on [0, n) and
// y = slope·x + intercept + N(0, noise), seeded deterministically.
func simulateLine(n int, slope, intercept, noise float64, seed uint64) (*matrix.Dense, []float64, error) {
	normal := distuv.Normal{Mu: 0, Sigma: noise, Src: randv2.NewPCG(seed, seed)}

	rows := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		rows[i] = []float64{x}
		y[i] = slope*x + intercept
		if noise > 0 {
			y[i] += normal.Rand()
		}
	}

	X, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return X, y, nil
}

// simulateSparse draws n observations over three features where only the
// first carries signal: y = intercept + slope·x₁ + 0·x₂ + 0·x₃ + noise.
// The lasso subcommand uses it to demonstrate exact-zero recovery.
func simulateSparse(n int, slope, intercept, noise float64, seed uint64) (*matrix.Dense, []float64, error) {
	src := randv2.NewPCG(seed, seed)
	normal := distuv.Normal{Mu: 0, Sigma: noise, Src: src}
	feature := distuv.Normal{Mu: 0, Sigma: 3, Src: src}

	rows := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x1, x2, x3 := feature.Rand(), feature.Rand(), feature.Rand()
		rows[i] = []float64{x1, x2, x3}
		y[i] = intercept + slope*x1
		if noise > 0 {
			y[i] += normal.Rand()
		}
	}

	X, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return X, y, nil
}
