// Package descent fits linear models iteratively, by fixed-step batch
// gradient descent — and hands back every step it took.
//
// 🚀 Why gradient descent when ols is exact?
//
//	The closed-form solver jumps straight to the answer; descent walks
//	there, recording a (coefficients, loss) snapshot per iteration. That
//	trajectory is the point: it shows how learning rate and iteration
//	count shape convergence — or divergence, which is a perfectly valid,
//	observable outcome here, never an error.
//
// ✨ Key features:
//   - exact analytic gradient of L = ½·mean((y − Aβ)²), no approximation
//   - zero-initialized coefficients on the intercept-augmented matrix
//   - full Loss History: fresh β snapshot + scalar loss per iteration
//   - fixed iteration budget: no early stopping, no convergence check
//
// ⚙️ Usage:
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}, {3}})
//	y := []float64{5, 7, 9, 11}
//
//	opts := descent.DefaultOptions() // LearnRate 0.05, Iterations 1000
//	beta, history, err := descent.Run(X, y, opts)
//	// beta ≈ [5, 2]; history[len(history)-1].Loss ≈ 0
//
// Performance:
//
//   - Time:   O(iterations · n · p)
//   - Memory: O(iterations · p) for the history
//
// See example_test.go for a convergence walkthrough.
package descent
