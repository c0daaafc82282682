package models

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates that paired arrays do not share the same
// length or dimensions.
var ErrShapeMismatch = errors.New("shape mismatch")

// TAC represents a time-activity curve sampled at discrete frame times
type TAC struct {
	// Times holds the sample times in minutes, sorted ascending
	Times []float64

	// Values holds the activity concentration at each sample time.
	// Early-frame values may be zero before tracer arrival.
	Values []float64
}

// Validate checks that the time and value arrays have the same length
func (t *TAC) Validate() error {
	if len(t.Times) != len(t.Values) {
		return fmt.Errorf("%w: %d times vs %d values", ErrShapeMismatch, len(t.Times), len(t.Values))
	}
	return nil
}

// Len returns the number of samples in the curve
func (t *TAC) Len() int {
	return len(t.Times)
}

// Fit holds the two coefficients of a fitted line. The physiological
// interpretation depends on the graphical method: for Patlak the slope is
// the net influx constant Ki, for Logan it is the distribution volume Vd.
type Fit struct {
	// Slope is the fitted line slope
	Slope float64

	// Intercept is the fitted line intercept
	Intercept float64
}

// Volume3D represents a single 3D image volume as a 1D array in
// row-major order (x fastest, then y, then z)
type Volume3D struct {
	// Data is the voxel data as a 1D array
	Data []float64

	// Width, Height, Depth are the volume dimensions in voxels
	Width, Height, Depth int
}

// NewVolume3D allocates a zeroed volume with the given dimensions
func NewVolume3D(width, height, depth int) *Volume3D {
	return &Volume3D{
		Data:   make([]float64, width*height*depth),
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// SameShape reports whether two volumes have identical dimensions
func (v *Volume3D) SameShape(o *Volume3D) bool {
	return v.Width == o.Width && v.Height == o.Height && v.Depth == o.Depth
}

// Volume4D represents a dynamic PET acquisition: a sequence of 3D frames
// stored as a 1D array in frame-major order
type Volume4D struct {
	// Data is the voxel data as a 1D array; frame f occupies
	// Data[f*FrameSize() : (f+1)*FrameSize()]
	Data []float64

	// Frames is the number of time frames
	Frames int

	// Width, Height, Depth are the spatial dimensions of each frame
	Width, Height, Depth int
}

// NewVolume4D allocates a zeroed 4D volume with the given dimensions
func NewVolume4D(frames, width, height, depth int) *Volume4D {
	return &Volume4D{
		Data:   make([]float64, frames*width*height*depth),
		Frames: frames,
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// FrameSize returns the number of voxels in a single frame
func (v *Volume4D) FrameSize() int {
	return v.Width * v.Height * v.Depth
}

// Frame returns the voxel data of frame f as a subslice of the volume data
func (v *Volume4D) Frame(f int) []float64 {
	size := v.FrameSize()
	return v.Data[f*size : (f+1)*size]
}
