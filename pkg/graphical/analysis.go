package graphical

import (
	"fmt"

	"petkinetics/internal/models"
)

// Method identifies one of the supported graphical analysis methods
type Method int

const (
	MethodPatlak Method = iota
	MethodLogan
	MethodAltLogan
)

// String returns the canonical name of the method
func (m Method) String() string {
	switch m {
	case MethodPatlak:
		return "patlak"
	case MethodLogan:
		return "logan"
	case MethodAltLogan:
		return "alt_logan"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod resolves a method name to its Method value. The name must be
// exactly "patlak", "logan", or "alt_logan"; anything else returns
// ErrInvalidMethod carrying the offending name.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "patlak":
		return MethodPatlak, nil
	case "logan":
		return MethodLogan, nil
	case "alt_logan":
		return MethodAltLogan, nil
	default:
		return 0, fmt.Errorf("%w: must be \"patlak\", \"logan\", or \"alt_logan\", got %q", ErrInvalidMethod, name)
	}
}

// Analyze runs the method's transform and line fit on the given TAC pair.
// The result is identical to calling the method's analysis function
// directly.
func (m Method) Analyze(inputTAC, regionTAC, times []float64, tThresh float64) (models.Fit, error) {
	switch m {
	case MethodPatlak:
		return PatlakAnalysis(inputTAC, regionTAC, times, tThresh)
	case MethodLogan:
		return LoganAnalysis(inputTAC, regionTAC, times, tThresh)
	case MethodAltLogan:
		return AltLoganAnalysis(inputTAC, regionTAC, times, tThresh)
	default:
		return models.Fit{}, fmt.Errorf("%w: %v", ErrInvalidMethod, m)
	}
}

// RunMethod resolves a method by name and runs it on the given TAC pair.
// Each invocation is independent; no state is retained between calls.
func RunMethod(name string, inputTAC, regionTAC, times []float64, tThresh float64) (models.Fit, error) {
	method, err := ParseMethod(name)
	if err != nil {
		return models.Fit{}, err
	}
	return method.Analyze(inputTAC, regionTAC, times, tThresh)
}
