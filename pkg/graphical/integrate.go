package graphical

// CumulativeIntegral computes the cumulative integral of values over times
// using the trapezoidal rule. The result has the same length as times:
// position 0 equals initial, and position i adds the trapezoid area between
// samples i-1 and i to the running total.
//
// Only 1D sequences are supported. The times array is expected to be sorted
// ascending; a non-increasing array produces signed areas rather than an
// error.
func CumulativeIntegral(times, values []float64, initial float64) []float64 {
	out := make([]float64, len(times))
	if len(out) == 0 {
		return out
	}

	out[0] = initial
	for i := 1; i < len(times); i++ {
		area := (times[i] - times[i-1]) * (values[i] + values[i-1]) / 2.0
		out[i] = out[i-1] + area
	}

	return out
}
