// Package idif derives image-based input functions from dynamic PET
// acquisitions. It provides the array transformations that turn a 4D PET
// volume and a carotid mask into the input time-activity curve consumed by
// the graphical analysis methods: early-frame averaging, mask cropping,
// percentile thresholding, bolus-frame detection, and per-frame averaging.
package idif

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"petkinetics/internal/models"
)

// ErrFrameOutOfBounds indicates a frame window outside the acquisition's
// frame range.
var ErrFrameOutOfBounds = errors.New("frame index out of bounds")

// bolusSearchFrames is the number of leading frames scanned for the bolus
// arrival peak.
const bolusSearchFrames = 10

// EarlyMeanImage averages the frames of a 4D PET volume over the inclusive
// window [startFrame, endFrame] into a single 3D volume. The early frames
// around bolus arrival give the clearest picture of the blood pool.
func EarlyMeanImage(vol *models.Volume4D, startFrame, endFrame int) (*models.Volume3D, error) {
	if startFrame < 0 || endFrame >= vol.Frames || startFrame > endFrame {
		return nil, fmt.Errorf("%w: window [%d, %d] with %d frames", ErrFrameOutOfBounds, startFrame, endFrame, vol.Frames)
	}

	mean := models.NewVolume3D(vol.Width, vol.Height, vol.Depth)
	for f := startFrame; f <= endFrame; f++ {
		floats.Add(mean.Data, vol.Frame(f))
	}
	floats.Scale(1.0/float64(endFrame-startFrame+1), mean.Data)

	return mean, nil
}

// CropByMask multiplies an image elementwise by a binary mask, retaining
// the image only where the mask is nonzero.
func CropByMask(img, mask *models.Volume3D) (*models.Volume3D, error) {
	if !img.SameShape(mask) {
		return nil, fmt.Errorf("%w: image %dx%dx%d vs mask %dx%dx%d", models.ErrShapeMismatch,
			img.Width, img.Height, img.Depth, mask.Width, mask.Height, mask.Depth)
	}

	out := models.NewVolume3D(img.Width, img.Height, img.Depth)
	floats.MulTo(out.Data, img.Data, mask.Data)
	return out, nil
}

// ThresholdMask builds a binary mask from an image: voxels below the
// threshold become 0, voxels at or above it become 1.
func ThresholdMask(img *models.Volume3D, threshold float64) *models.Volume3D {
	mask := models.NewVolume3D(img.Width, img.Height, img.Depth)
	for i, v := range img.Data {
		if v >= threshold {
			mask.Data[i] = 1
		}
	}
	return mask
}

// ApplyMask4D multiplies every frame of a 4D volume by the same 3D binary
// mask.
func ApplyMask4D(vol *models.Volume4D, mask *models.Volume3D) (*models.Volume4D, error) {
	if vol.Width != mask.Width || vol.Height != mask.Height || vol.Depth != mask.Depth {
		return nil, fmt.Errorf("%w: volume %dx%dx%d vs mask %dx%dx%d", models.ErrShapeMismatch,
			vol.Width, vol.Height, vol.Depth, mask.Width, mask.Height, mask.Depth)
	}

	out := models.NewVolume4D(vol.Frames, vol.Width, vol.Height, vol.Depth)
	for f := 0; f < vol.Frames; f++ {
		floats.MulTo(out.Frame(f), vol.Frame(f), mask.Data)
	}
	return out, nil
}

// FrameAverages collapses each frame of a 4D volume into its spatial mean,
// producing the value sequence of a time-activity curve.
func FrameAverages(vol *models.Volume4D) []float64 {
	averages := make([]float64, vol.Frames)
	for f := 0; f < vol.Frames; f++ {
		averages[f] = stat.Mean(vol.Frame(f), nil)
	}
	return averages
}

// FrameMidpoints computes frame midpoint times from frame start times and
// durations.
func FrameMidpoints(starts, durations []float64) ([]float64, error) {
	if len(starts) != len(durations) {
		return nil, fmt.Errorf("%w: %d starts vs %d durations", models.ErrShapeMismatch, len(starts), len(durations))
	}

	midpoints := make([]float64, len(starts))
	for i := range starts {
		midpoints[i] = starts[i] + durations[i]/2.0
	}
	return midpoints, nil
}

// BolusFrameIndex locates the bolus arrival frame: the frame with the
// highest NaN-aware spatial mean among the first ten frames of the
// acquisition.
func BolusFrameIndex(vol *models.Volume4D) int {
	n := vol.Frames
	if n > bolusSearchFrames {
		n = bolusSearchFrames
	}

	best := 0
	bestMean := math.Inf(-1)
	for f := 0; f < n; f++ {
		m := nanMean(vol.Frame(f))
		if m > bestMean {
			bestMean = m
			best = f
		}
	}
	return best
}

// ExtractIDIF estimates an image-derived input function from a masked 4D
// PET volume. The bolus frame is located first; the three frames centered
// on it are averaged into a 3D image whose 90th percentile defines the
// automatic carotid mask. For every frame, the curve value is the given
// percentile of the voxels inside that mask.
//
// midpoints supplies the frame midpoint times and must cover every frame.
func ExtractIDIF(vol *models.Volume4D, percentile float64, midpoints []float64) (*models.TAC, error) {
	if len(midpoints) < vol.Frames {
		return nil, fmt.Errorf("%w: %d midpoint times for %d frames", models.ErrShapeMismatch, len(midpoints), vol.Frames)
	}

	bolus := BolusFrameIndex(vol)

	// Average the frames around the bolus peak, clamped to the frame range
	lo := bolus - 1
	if lo < 0 {
		lo = 0
	}
	hi := bolus + 2
	if hi > vol.Frames {
		hi = vol.Frames
	}

	size := vol.FrameSize()
	windowAvg := make([]float64, size)
	for i := 0; i < size; i++ {
		var sum float64
		var count int
		for f := lo; f < hi; f++ {
			v := vol.Frame(f)[i]
			if !math.IsNaN(v) {
				sum += v
				count++
			}
		}
		if count == 0 {
			windowAvg[i] = math.NaN()
		} else {
			windowAvg[i] = sum / float64(count)
		}
	}

	autoThreshold := nanPercentile(windowAvg, 90)

	// Voxels above the automatic threshold form the carotid region
	carotid := make([]bool, size)
	for i, v := range windowAvg {
		carotid[i] = v > autoThreshold
	}

	tac := &models.TAC{
		Times:  append([]float64(nil), midpoints[:vol.Frames]...),
		Values: make([]float64, vol.Frames),
	}

	masked := make([]float64, 0, size)
	for f := 0; f < vol.Frames; f++ {
		frame := vol.Frame(f)
		masked = masked[:0]
		for i, in := range carotid {
			if in {
				masked = append(masked, frame[i])
			}
		}
		tac.Values[f] = nanPercentile(masked, percentile)
	}

	return tac, nil
}

// nanMean returns the mean of the finite entries of data, or NaN if there
// are none.
func nanMean(data []float64) float64 {
	var sum float64
	var count int
	for _, v := range data {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// nanPercentile returns the p-th percentile (0-100) of the non-NaN entries
// of data using linear interpolation, or NaN if there are none.
func nanPercentile(data []float64, p float64) float64 {
	finite := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return math.NaN()
	}

	sort.Float64s(finite)
	return stat.Quantile(p/100.0, stat.LinInterp, finite, nil)
}
