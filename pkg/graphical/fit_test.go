package graphical

import (
	"math"
	"testing"
)

// TestFitLinePerfectLine verifies recovery of exact line coefficients
func TestFitLinePerfectLine(t *testing.T) {
	xdata := []float64{0, 1, 2, 3}
	ydata := []float64{1, 3, 5, 7}

	slope, intercept := FitLine(xdata, ydata)

	if math.Abs(slope-2.0) > 1e-9 {
		t.Errorf("Expected slope 2.0, got %.12f", slope)
	}
	if math.Abs(intercept-1.0) > 1e-9 {
		t.Errorf("Expected intercept 1.0, got %.12f", intercept)
	}
}

// TestFitLineNegativeSlope verifies fitting a descending line
func TestFitLineNegativeSlope(t *testing.T) {
	xdata := []float64{0, 2, 4, 6}
	ydata := []float64{10, 7, 4, 1}

	slope, intercept := FitLine(xdata, ydata)

	if math.Abs(slope-(-1.5)) > 1e-9 {
		t.Errorf("Expected slope -1.5, got %.12f", slope)
	}
	if math.Abs(intercept-10.0) > 1e-9 {
		t.Errorf("Expected intercept 10.0, got %.12f", intercept)
	}
}

// TestFitLineOverdetermined verifies the least-squares solution for noisy
// data against the closed-form normal equations
func TestFitLineOverdetermined(t *testing.T) {
	xdata := []float64{0, 1, 2, 3}
	ydata := []float64{0, 2, 3, 5}

	slope, intercept := FitLine(xdata, ydata)

	// Hand-computed OLS solution: slope 1.6, intercept 0.1
	if math.Abs(slope-1.6) > 1e-9 {
		t.Errorf("Expected slope 1.6, got %.12f", slope)
	}
	if math.Abs(intercept-0.1) > 1e-9 {
		t.Errorf("Expected intercept 0.1, got %.12f", intercept)
	}
}

// TestFitLineTooFewPoints verifies the degenerate result for an
// underdetermined fit
func TestFitLineTooFewPoints(t *testing.T) {
	slope, intercept := FitLine([]float64{1}, []float64{2})
	if !math.IsNaN(slope) || !math.IsNaN(intercept) {
		t.Errorf("Expected NaN coefficients for a single point, got (%f, %f)", slope, intercept)
	}
}

// TestFitLineNonFinitePropagation verifies that non-finite samples reach
// the solution instead of being filtered out
func TestFitLineNonFinitePropagation(t *testing.T) {
	xdata := []float64{0, 1, 2, 3}
	ydata := []float64{math.NaN(), 3, 5, 7}

	slope, intercept := FitLine(xdata, ydata)

	if !math.IsNaN(slope) && !math.IsNaN(intercept) {
		t.Errorf("Expected NaN to propagate into the fit, got (%f, %f)", slope, intercept)
	}
}

// BenchmarkFitLine benchmarks the QR least-squares fit
func BenchmarkFitLine(b *testing.B) {
	n := 64
	xdata := make([]float64, n)
	ydata := make([]float64, n)
	for i := range xdata {
		xdata[i] = float64(i)
		ydata[i] = 0.5*float64(i) + 1.2
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FitLine(xdata, ydata)
	}
}
