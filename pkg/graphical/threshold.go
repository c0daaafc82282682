package graphical

// ThresholdIndex returns the smallest index i such that times[i] >= tThresh.
// If the threshold exceeds every sample time it returns -1, meaning no
// post-threshold samples exist. Callers must treat -1 as an explicit
// "no fit window" signal rather than using it as a slice bound.
//
// The times array must be non-empty and sorted ascending.
func ThresholdIndex(times []float64, tThresh float64) int {
	if len(times) == 0 || tThresh > times[len(times)-1] {
		return -1
	}

	for i, t := range times {
		if t >= tThresh {
			return i
		}
	}

	return -1
}
