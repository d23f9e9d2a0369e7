package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-pdf2md/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "PDF2MD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PDF2MD_CONFIG: config file name or path
	InputDir   string // PDF2MD_INPUT_DIR: default input directory
	OutputDir  string // PDF2MD_OUTPUT_DIR: default output directory
	Password   string // PDF2MD_PASSWORD: user password for protected PDFs
	Workers    int    // PDF2MD_WORKERS: parallel workers
	MaxSizeMB  int    // PDF2MD_MAX_SIZE_MB: largest accepted PDF
	LogFile    string // PDF2MD_LOG_FILE: rotated log file
}

// knownEnvVars lists valid PDF2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PDF2MD_CONFIG":      true,
	"PDF2MD_INPUT_DIR":   true,
	"PDF2MD_OUTPUT_DIR":  true,
	"PDF2MD_PASSWORD":    true,
	"PDF2MD_WORKERS":     true,
	"PDF2MD_MAX_SIZE_MB": true,
	"PDF2MD_LOG_FILE":    true,
	"PDF2MD_CONTAINER":   true, // doctor: force container detection
}

// loadEnvConfig reads configuration from environment variables.
// Malformed or non-positive numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PDF2MD_CONFIG"),
		InputDir:   os.Getenv("PDF2MD_INPUT_DIR"),
		OutputDir:  os.Getenv("PDF2MD_OUTPUT_DIR"),
		Password:   os.Getenv("PDF2MD_PASSWORD"),
		LogFile:    os.Getenv("PDF2MD_LOG_FILE"),
		Workers:    positiveEnvInt("PDF2MD_WORKERS"),
		MaxSizeMB:  positiveEnvInt("PDF2MD_MAX_SIZE_MB"),
	}
	return cfg
}

// positiveEnvInt parses a positive integer variable, returning 0 otherwise.
func positiveEnvInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// unknownEnvVars returns the names of unrecognized PDF2MD_* variables.
func unknownEnvVars() []string {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// warnUnknownEnvVars logs warnings for unrecognized PDF2MD_* variables.
// Helps catch typos like PDF2MD_PASWORD.
func warnUnknownEnvVars(logger logrus.FieldLogger) {
	for _, name := range unknownEnvVars() {
		logger.WithField("variable", name).Warn("unknown environment variable (typo?)")
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file; CLI flags are applied later
// via mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.MaxSizeMB > 0 {
		cfg.Input.MaxSizeMB = env.MaxSizeMB
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Password != "" {
		cfg.PDF.Password = env.Password
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
}
