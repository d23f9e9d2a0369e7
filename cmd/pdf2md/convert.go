package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	pdf2md "github.com/alnah/go-pdf2md"
	"github.com/alnah/go-pdf2md/internal/config"
)

// batchError reports failed conversions. It unwraps to the first failure
// so the exit code reflects its kind.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	if e.total == 1 {
		return "conversion failed"
	}
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error { return e.first }

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if err := validateWorkers(envCfg.Workers); err != nil {
		return fmt.Errorf("PDF2MD_WORKERS: %w", err)
	}

	// Load configuration: --config wins over PDF2MD_CONFIG
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Layer env vars, then CLI flags
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger, closer := newLogger(env.Stderr, logOptions{
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
		file:    cfg.Log,
	})
	defer func() { _ = closer.Close() }()

	warnUnknownEnvVars(logger)
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger.Debugf)
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve output target
	output := resolveOutputDir(flags.output, cfg)

	// Discover files to convert
	files, err := discoverFiles(inputPath, output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPDFs, inputPath)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = pdf2md.ResolvePoolSize(workers)

	logger.WithFields(logrus.Fields{
		"files":   len(files),
		"workers": workers,
		"output":  output,
	}).Debug("starting conversion")

	conv := pdf2md.NewConverter(
		pdf2md.WithPassword(cfg.PDF.Password),
		pdf2md.WithMaxSize(cfg.MaxSizeBytes()),
	)

	params := &conversionParams{
		workers: workers,
		maxSize: cfg.MaxSizeBytes(),
		html:    cfg.Output.HTML,
		stdout:  env.Stdout,
		logger:  logger,
		now:     env.Now,
	}

	results := convertBatch(ctx, conv, files, params)

	failed := printResultsWithWriter(results, printOptions{
		quiet:         flags.common.quiet,
		verbose:       flags.common.verbose,
		outline:       cfg.Output.Outline,
		passwordGiven: cfg.PDF.Password != "",
		limitMB:       int(cfg.MaxSizeBytes() >> 20),
	}, env)
	if failed > 0 {
		return &batchError{failed: failed, total: len(results), first: firstError(results)}
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.input.password != "" {
		cfg.PDF.Password = flags.input.password
	}
	if flags.input.maxSizeMB != 0 {
		cfg.Input.MaxSizeMB = flags.input.maxSizeMB
	}
	if flags.outputMode.html {
		cfg.Output.HTML = true
	}
	if flags.outputMode.outline {
		cfg.Output.Outline = true
	}
	if flags.common.logFile != "" {
		cfg.Log.File = flags.common.logFile
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output target from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// firstError returns the first failure in input order.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
