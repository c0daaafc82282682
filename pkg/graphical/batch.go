package graphical

import (
	"runtime"
	"sync"

	"petkinetics/internal/models"
)

// BatchResult holds the outcome of one region's analysis in a batch run
type BatchResult struct {
	// Fit holds the fitted coefficients when Err is nil
	Fit models.Fit

	// Err reports a per-region failure, e.g. an empty fit window
	Err error
}

// RunBatch analyzes many region TACs against a single input TAC in
// parallel. Every analysis is a pure function over its inputs, so regions
// are simply divided among numCores workers with no shared mutable state.
// Passing numCores < 1 uses all available CPU cores.
//
// The result slice is ordered like regionTACs.
func RunBatch(method Method, inputTAC []float64, regionTACs [][]float64, times []float64, tThresh float64, numCores int) []BatchResult {
	if numCores < 1 {
		numCores = runtime.NumCPU()
	}

	results := make([]BatchResult, len(regionTACs))

	// Divide the work among available cores
	var wg sync.WaitGroup
	regionsPerCore := (len(regionTACs) + numCores - 1) / numCores

	for c := 0; c < numCores; c++ {
		wg.Add(1)

		go func(coreID int) {
			defer wg.Done()

			start := coreID * regionsPerCore
			end := start + regionsPerCore
			if end > len(regionTACs) {
				end = len(regionTACs)
			}

			for i := start; i < end; i++ {
				fit, err := method.Analyze(inputTAC, regionTACs[i], times, tThresh)
				results[i] = BatchResult{Fit: fit, Err: err}
			}
		}(c)
	}

	wg.Wait()
	return results
}
