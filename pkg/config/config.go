// Package config provides configuration loading and management for petkinetics.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Analysis parameters
	Analysis struct {
		// Method selects the graphical method: patlak, logan, or alt_logan
		Method string `yaml:"method"`

		// ThresholdMinutes is the fit window start threshold in minutes
		ThresholdMinutes float64 `yaml:"thresholdMinutes"`

		// NumCores specifies how many CPU cores to use for batch analysis
		NumCores int `yaml:"numCores"`
	} `yaml:"analysis"`

	// Image-derived input function parameters
	IDIF struct {
		// StartFrame is the first frame (inclusive) of the early mean window
		StartFrame int `yaml:"startFrame"`

		// EndFrame is the last frame (inclusive) of the early mean window
		EndFrame int `yaml:"endFrame"`

		// Percentile is the per-frame percentile taken over carotid voxels
		Percentile float64 `yaml:"percentile"`
	} `yaml:"idif"`

	// Output parameters
	Output struct {
		// Directory is where analysis reports are written
		Directory string `yaml:"directory"`

		// FilenamePrefix is prepended to every output filename
		FilenamePrefix string `yaml:"filenamePrefix"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default analysis parameters
	cfg.Analysis.Method = "patlak"
	cfg.Analysis.ThresholdMinutes = 30.0
	cfg.Analysis.NumCores = runtime.NumCPU() // Use all available cores by default

	// Set default IDIF parameters
	cfg.IDIF.StartFrame = 3
	cfg.IDIF.EndFrame = 7
	cfg.IDIF.Percentile = 90.0

	// Set default output parameters
	cfg.Output.Directory = "results"
	cfg.Output.FilenamePrefix = "analysis"
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
