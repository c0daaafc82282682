package graphical

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FitLine computes the ordinary least-squares line fit y = slope*x + intercept
// by building the design matrix [x | 1] and solving the least-squares system
// with a QR decomposition.
//
// The fit requires len(xdata) == len(ydata) and at least two points for a
// determined solution; fewer points or coincident x values yield a degenerate
// result rather than an error. Non-finite coordinates (from division by zero
// activity in the method transforms) propagate into the solution.
func FitLine(xdata, ydata []float64) (slope, intercept float64) {
	n := len(xdata)
	if n < 2 {
		return math.NaN(), math.NaN()
	}

	design := mat.NewDense(n, 2, nil)
	for i, x := range xdata {
		design.Set(i, 0, x)
		design.Set(i, 1, 1.0)
	}
	rhs := mat.NewVecDense(n, ydata)

	var qr mat.QR
	qr.Factorize(design)

	sol := mat.NewDense(2, 1, nil)
	if err := qr.SolveTo(sol, false, rhs); err != nil {
		// An ill-conditioned system still carries a usable solution
		// estimate; only a hard failure degenerates to NaN.
		if _, ok := err.(mat.Condition); !ok {
			return math.NaN(), math.NaN()
		}
	}

	return sol.At(0, 0), sol.At(1, 0)
}
