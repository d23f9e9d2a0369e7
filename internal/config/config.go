package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pdf2md/internal/fileutil"
	"github.com/alnah/go-pdf2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRange      = errors.New("field out of range")
)

// Field limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxPasswordLength = 127  // PDF 1.7 limit for UTF-8 passwords
	MaxInputSizeMB    = 1024
	MaxLogSizeMB      = 1024
	MaxLogBackups     = 100
	MaxLogAgeDays     = 3650
)

// Defaults applied by the CLI when a field is zero.
const (
	DefaultInputSizeMB = 50
	DefaultLogSizeMB   = 10
	DefaultLogBackups  = 3
	DefaultLogAgeDays  = 28
)

// Config holds all configuration for PDF conversion.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	PDF    PDFConfig    `yaml:"pdf"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	MaxSizeMB  int    `yaml:"maxSizeMB"`  // Largest accepted PDF (0 = 50)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	HTML       bool   `yaml:"html"`       // Also write an HTML preview
	Outline    bool   `yaml:"outline"`    // Print the heading outline
}

// PDFConfig defines how documents are opened.
type PDFConfig struct {
	Password string `yaml:"password"`
}

// LogConfig defines the optional rotating log file.
type LogConfig struct {
	File       string `yaml:"file"`       // Empty = stderr only
	MaxSizeMB  int    `yaml:"maxSizeMB"`  // Rotate after this size (0 = 10)
	MaxBackups int    `yaml:"maxBackups"` // Rotated files kept (0 = 3)
	MaxAgeDays int    `yaml:"maxAgeDays"` // Days to keep rotated files (0 = 28)
	Compress   bool   `yaml:"compress"`
}

// Validate checks field lengths and numeric ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateRange("input.maxSizeMB", c.Input.MaxSizeMB, 0, MaxInputSizeMB); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("pdf.password", c.PDF.Password, MaxPasswordLength); err != nil {
		return err
	}

	// Validate log fields
	if err := validateFieldLength("log.file", c.Log.File, MaxPathLength); err != nil {
		return err
	}
	if err := validateRange("log.maxSizeMB", c.Log.MaxSizeMB, 0, MaxLogSizeMB); err != nil {
		return err
	}
	if err := validateRange("log.maxBackups", c.Log.MaxBackups, 0, MaxLogBackups); err != nil {
		return err
	}
	if err := validateRange("log.maxAgeDays", c.Log.MaxAgeDays, 0, MaxLogAgeDays); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRange checks that an integer field lies within [lo, hi].
func validateRange(fieldName string, value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrFieldRange, fieldName, lo, hi, value)
	}
	return nil
}

// MaxSizeBytes returns the input size limit in bytes, applying the default.
func (c *Config) MaxSizeBytes() int64 {
	mb := c.Input.MaxSizeMB
	if mb == 0 {
		mb = DefaultInputSizeMB
	}
	return int64(mb) << 20
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		PDF:    PDFConfig{Password: ""},
		Log:    LogConfig{File: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Paths: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NotFoundError lists the locations searched for a missing config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Paths []string
}

func (e *NotFoundError) Error() string {
	if len(e.Paths) == 1 {
		return fmt.Sprintf("%s: %s", ErrConfigNotFound, e.Paths[0])
	}
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Paths, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pdf2md/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-pdf2md", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Paths: triedPaths}
}
