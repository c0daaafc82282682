package graphical

import "testing"

// TestThresholdIndex verifies threshold-to-index resolution including the
// -1 sentinel for thresholds beyond the last sample
func TestThresholdIndex(t *testing.T) {
	testCases := []struct {
		name     string
		times    []float64
		tThresh  float64
		expected int
	}{
		{"between samples", []float64{0, 1, 2, 3}, 1.5, 2},
		{"beyond last sample", []float64{0, 1, 2}, 5, -1},
		{"exact sample time", []float64{0, 1, 2, 3}, 2.0, 2},
		{"before first sample", []float64{0.5, 1, 2}, 0, 0},
		{"equal to first sample", []float64{0, 1, 2}, 0, 0},
		{"equal to last sample", []float64{0, 1, 2}, 2.0, 2},
		{"just past last sample", []float64{0, 1, 2}, 2.0001, -1},
	}

	for _, tc := range testCases {
		result := ThresholdIndex(tc.times, tc.tThresh)
		if result != tc.expected {
			t.Errorf("%s: expected index %d, got %d", tc.name, tc.expected, result)
		}
	}
}
