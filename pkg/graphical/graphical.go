// Package graphical implements graphical (linearized) kinetic analysis of
// PET time-activity curves. It provides the Patlak-Gjedde, Logan, and
// alternative Logan plots: each method transforms an input (plasma) TAC and
// a region (tissue) TAC into linear coordinates and fits a line over the
// samples at or after a threshold time. The fitted slope and intercept are
// the method's kinetic parameters, e.g. the net influx constant for Patlak
// or the distribution volume for Logan.
//
// All functions are pure: they read their input slices, allocate fresh
// outputs, and keep no state between calls, so independent analyses can run
// concurrently without synchronization.
package graphical

import "errors"

var (
	// ErrInvalidMethod indicates an unrecognized graphical method name.
	ErrInvalidMethod = errors.New("invalid graphical method")

	// ErrEmptyFitWindow indicates that the threshold time lies beyond the
	// last sample time, leaving no points to fit.
	ErrEmptyFitWindow = errors.New("empty fit window")
)
