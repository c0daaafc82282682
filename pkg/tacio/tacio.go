// Package tacio loads and saves time-activity curves and analysis reports.
// Curves are plain two-column text files (time in minutes, activity);
// reports are YAML documents carrying the fit together with its metadata.
package tacio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"petkinetics/internal/models"
)

// LoadTAC reads a time-activity curve from a two-column text file. Columns
// may be separated by whitespace or commas; blank lines and lines starting
// with '#' are skipped.
func LoadTAC(path string) (*models.TAC, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading TAC file: %w", err)
	}

	tac := &models.TAC{}
	for lineNum, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) < 2 {
			return nil, fmt.Errorf("error parsing %s:%d: expected two columns, got %d", path, lineNum+1, len(fields))
		}

		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s:%d: %w", path, lineNum+1, err)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s:%d: %w", path, lineNum+1, err)
		}

		tac.Times = append(tac.Times, t)
		tac.Values = append(tac.Values, v)
	}

	if tac.Len() == 0 {
		return nil, fmt.Errorf("error parsing %s: no samples found", path)
	}

	return tac, nil
}

// SaveTAC writes a time-activity curve as a two-column text file, creating
// the parent directory if needed.
func SaveTAC(path string, tac *models.TAC) error {
	if err := tac.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# time_min\tactivity\n")
	for i := range tac.Times {
		fmt.Fprintf(&sb, "%g\t%g\n", tac.Times[i], tac.Values[i])
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("error writing TAC file: %w", err)
	}

	return nil
}

// Report records one graphical analysis run: the fitted coefficients along
// with the method, threshold, and fit window that produced them.
type Report struct {
	// MethodName is the graphical method that was run
	MethodName string `yaml:"methodName"`

	// InputTACPath and RegionTACPath identify the analyzed curves
	InputTACPath  string `yaml:"inputTacPath,omitempty"`
	RegionTACPath string `yaml:"regionTacPath,omitempty"`

	// ThresholdTime is the fit window start threshold in minutes
	ThresholdTime float64 `yaml:"thresholdTime"`

	// StartFrameTime and EndFrameTime bound the samples actually fitted,
	// in minutes
	StartFrameTime float64 `yaml:"startFrameTime"`
	EndFrameTime   float64 `yaml:"endFrameTime"`

	// NumberOfPointsFit is the number of post-threshold samples
	NumberOfPointsFit int `yaml:"numberOfPointsFit"`

	// Slope and Intercept are the fitted line coefficients
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
}

// NewReport assembles a report for a completed fit. startIndex is the
// threshold index the fit window began at; times is the shared TAC time
// array.
func NewReport(methodName string, tThresh float64, times []float64, startIndex int, fit models.Fit) *Report {
	return &Report{
		MethodName:        methodName,
		ThresholdTime:     tThresh,
		StartFrameTime:    times[startIndex],
		EndFrameTime:      times[len(times)-1],
		NumberOfPointsFit: len(times) - startIndex,
		Slope:             fit.Slope,
		Intercept:         fit.Intercept,
	}
}

// SaveReport writes the report to a YAML file, creating the parent
// directory if needed.
func SaveReport(path string, report *Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating report directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}

	return nil
}

// LoadReport reads a previously saved YAML report.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading report file: %w", err)
	}

	report := &Report{}
	if err := yaml.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("error parsing report file: %w", err)
	}

	return report, nil
}
