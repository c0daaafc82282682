package graphical

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"petkinetics/internal/models"
)

// PatlakX computes the Patlak independent variable: the cumulative integral
// of the TAC divided elementwise by the TAC itself. Zero activity values,
// common at early frames before tracer arrival, produce non-finite entries
// that are deliberately not filtered out.
func PatlakX(times, values []float64) []float64 {
	x := CumulativeIntegral(times, values, 0.0)
	floats.Div(x, values)
	return x
}

// PatlakAnalysis performs Patlak-Gjedde analysis on an input TAC and a
// region TAC sampled at the same times. The line is fit to all samples at
// or after tThresh minutes. The fitted slope is the net influx constant and
// the intercept the initial distribution volume.
//
// Both TACs are assumed to share the times array; this is not re-verified.
func PatlakAnalysis(inputTAC, regionTAC, times []float64, tThresh float64) (models.Fit, error) {
	start := ThresholdIndex(times, tThresh)
	if start < 0 {
		return models.Fit{}, fmt.Errorf("%w: no samples at or after t=%g min", ErrEmptyFitWindow, tThresh)
	}

	x := PatlakX(times, inputTAC)
	y := make([]float64, len(regionTAC))
	floats.DivTo(y, regionTAC, inputTAC)

	slope, intercept := FitLine(x[start:], y[start:])
	return models.Fit{Slope: slope, Intercept: intercept}, nil
}

// LoganAnalysis performs Logan plot analysis on an input TAC and a region
// TAC sampled at the same times. The line is fit to all samples at or after
// tThresh minutes. The slope estimates the distribution volume; the exact
// interpretation depends on the underlying compartment model.
func LoganAnalysis(inputTAC, regionTAC, times []float64, tThresh float64) (models.Fit, error) {
	start := ThresholdIndex(times, tThresh)
	if start < 0 {
		return models.Fit{}, fmt.Errorf("%w: no samples at or after t=%g min", ErrEmptyFitWindow, tThresh)
	}

	x := CumulativeIntegral(times, inputTAC, 0.0)
	floats.Div(x, regionTAC)
	y := CumulativeIntegral(times, regionTAC, 0.0)
	floats.Div(y, regionTAC)

	slope, intercept := FitLine(x[start:], y[start:])
	return models.Fit{Slope: slope, Intercept: intercept}, nil
}

// AltLoganAnalysis performs the alternative Logan analysis, which divides
// the region integral by the input TAC instead of the region TAC. The line
// is fit to all samples at or after tThresh minutes.
func AltLoganAnalysis(inputTAC, regionTAC, times []float64, tThresh float64) (models.Fit, error) {
	start := ThresholdIndex(times, tThresh)
	if start < 0 {
		return models.Fit{}, fmt.Errorf("%w: no samples at or after t=%g min", ErrEmptyFitWindow, tThresh)
	}

	x := CumulativeIntegral(times, inputTAC, 0.0)
	floats.Div(x, regionTAC)
	y := CumulativeIntegral(times, regionTAC, 0.0)
	floats.Div(y, inputTAC)

	slope, intercept := FitLine(x[start:], y[start:])
	return models.Fit{Slope: slope, Intercept: intercept}, nil
}
