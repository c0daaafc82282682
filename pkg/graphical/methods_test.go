package graphical

import (
	"errors"
	"math"
	"testing"
)

// makeTimes returns n sample times spaced one minute apart starting at 0
func makeTimes(n int) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i)
	}
	return times
}

// TestPatlakAnalysisRecoversLine verifies the Patlak fit on synthetic data
// with a known slope and intercept. With a constant input TAC the Patlak x
// variable reduces exactly to time, so region = (m*t + b) * input yields
// the line y = m*x + b.
func TestPatlakAnalysisRecoversLine(t *testing.T) {
	const (
		c = 2.0 // constant input activity
		m = 0.5
		b = 1.5
	)

	times := makeTimes(10)
	input := make([]float64, len(times))
	region := make([]float64, len(times))
	for i, tm := range times {
		input[i] = c
		region[i] = (m*tm + b) * c
	}

	fit, err := PatlakAnalysis(input, region, times, 0)
	if err != nil {
		t.Fatalf("Analysis failed: %v", err)
	}

	if math.Abs(fit.Slope-m) > 1e-9 {
		t.Errorf("Expected slope %f, got %.12f", m, fit.Slope)
	}
	if math.Abs(fit.Intercept-b) > 1e-9 {
		t.Errorf("Expected intercept %f, got %.12f", b, fit.Intercept)
	}
}

// TestLoganAnalysisConstantCurves verifies the Logan fit on constant
// curves: for input c and region r the plot is y = (r/c)*x through the
// origin.
func TestLoganAnalysisConstantCurves(t *testing.T) {
	const (
		c = 2.0
		r = 4.0
	)

	times := makeTimes(8)
	input := make([]float64, len(times))
	region := make([]float64, len(times))
	for i := range times {
		input[i] = c
		region[i] = r
	}

	fit, err := LoganAnalysis(input, region, times, 0)
	if err != nil {
		t.Fatalf("Analysis failed: %v", err)
	}

	if math.Abs(fit.Slope-r/c) > 1e-9 {
		t.Errorf("Expected slope %f, got %.12f", r/c, fit.Slope)
	}
	if math.Abs(fit.Intercept) > 1e-9 {
		t.Errorf("Expected intercept 0, got %.12f", fit.Intercept)
	}
}

// TestAltLoganAnalysisConstantCurves verifies the alternative Logan fit on
// constant curves: the slope becomes (r/c)^2 since the region integral is
// divided by the input instead of the region.
func TestAltLoganAnalysisConstantCurves(t *testing.T) {
	const (
		c = 2.0
		r = 4.0
	)

	times := makeTimes(8)
	input := make([]float64, len(times))
	region := make([]float64, len(times))
	for i := range times {
		input[i] = c
		region[i] = r
	}

	fit, err := AltLoganAnalysis(input, region, times, 0)
	if err != nil {
		t.Fatalf("Analysis failed: %v", err)
	}

	expected := (r / c) * (r / c)
	if math.Abs(fit.Slope-expected) > 1e-9 {
		t.Errorf("Expected slope %f, got %.12f", expected, fit.Slope)
	}
	if math.Abs(fit.Intercept) > 1e-9 {
		t.Errorf("Expected intercept 0, got %.12f", fit.Intercept)
	}
}

// TestAnalysisEmptyFitWindow verifies that a threshold beyond the last
// sample fails explicitly instead of silently fitting a tail sample
func TestAnalysisEmptyFitWindow(t *testing.T) {
	times := makeTimes(5)
	input := []float64{1, 2, 3, 4, 5}
	region := []float64{2, 4, 6, 8, 10}

	for _, method := range []Method{MethodPatlak, MethodLogan, MethodAltLogan} {
		_, err := method.Analyze(input, region, times, 100)
		if err == nil {
			t.Errorf("%s: expected error for threshold beyond last sample", method)
			continue
		}
		if !errors.Is(err, ErrEmptyFitWindow) {
			t.Errorf("%s: expected ErrEmptyFitWindow, got %v", method, err)
		}
	}
}

// TestPatlakZeroActivityPropagates verifies that zero early-frame activity
// produces non-finite coordinates that reach the fit unfiltered
func TestPatlakZeroActivityPropagates(t *testing.T) {
	times := makeTimes(6)
	input := []float64{0, 2, 2, 2, 2, 2} // zero before tracer arrival
	region := []float64{1, 3, 5, 7, 9, 11}

	fit, err := PatlakAnalysis(input, region, times, 0)
	if err != nil {
		t.Fatalf("Analysis failed: %v", err)
	}

	if !math.IsNaN(fit.Slope) && !math.IsInf(fit.Slope, 0) {
		t.Errorf("Expected non-finite slope from division by zero activity, got %f", fit.Slope)
	}
}

// TestMethodsTimeOrderSensitive confirms the methods are NOT invariant to
// reversing the sample order
func TestMethodsTimeOrderSensitive(t *testing.T) {
	times := makeTimes(8)
	input := []float64{1, 2, 3, 4, 4, 3, 2, 2}
	region := []float64{1, 3, 6, 9, 11, 12, 12, 11}

	reverse := func(s []float64) []float64 {
		out := make([]float64, len(s))
		for i, v := range s {
			out[len(s)-1-i] = v
		}
		return out
	}

	for _, method := range []Method{MethodPatlak, MethodLogan, MethodAltLogan} {
		forward, err := method.Analyze(input, region, times, 0)
		if err != nil {
			t.Fatalf("%s: forward analysis failed: %v", method, err)
		}

		backward, err := method.Analyze(reverse(input), reverse(region), reverse(times), 0)
		if err != nil {
			t.Fatalf("%s: reversed analysis failed: %v", method, err)
		}

		if forward.Slope == backward.Slope && forward.Intercept == backward.Intercept {
			t.Errorf("%s: expected reversed sample order to change the fit, got identical (%f, %f)",
				method, forward.Slope, forward.Intercept)
		}
	}
}

// TestPatlakXDimensions verifies the Patlak x variable length and its
// leading entry for nonzero activity
func TestPatlakXDimensions(t *testing.T) {
	times := []float64{0, 1, 2}
	values := []float64{2, 2, 2}

	x := PatlakX(times, values)

	if len(x) != len(times) {
		t.Fatalf("Expected %d elements, got %d", len(times), len(x))
	}
	if x[0] != 0 {
		t.Errorf("Expected leading x of 0 for nonzero activity, got %f", x[0])
	}
	if math.Abs(x[2]-2.0) > 1e-12 {
		t.Errorf("Expected x[2] = 2.0 (integral 4 over activity 2), got %f", x[2])
	}
}

// BenchmarkPatlakAnalysis benchmarks a full Patlak run on a realistic
// acquisition length
func BenchmarkPatlakAnalysis(b *testing.B) {
	n := 64
	times := make([]float64, n)
	input := make([]float64, n)
	region := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * 0.5
		input[i] = 2.0 + float64(i%5)
		region[i] = 1.0 + float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PatlakAnalysis(input, region, times, 5); err != nil {
			b.Fatalf("Analysis failed: %v", err)
		}
	}
}
