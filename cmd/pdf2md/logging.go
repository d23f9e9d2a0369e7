package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/alnah/go-pdf2md/internal/config"
)

// logOptions selects the logger level and destinations.
type logOptions struct {
	quiet   bool
	verbose bool
	file    config.LogConfig
}

// logLevel maps output flags to a logrus level.
// --quiet wins over --verbose.
func logLevel(quiet, verbose bool) logrus.Level {
	switch {
	case quiet:
		return logrus.ErrorLevel
	case verbose:
		return logrus.DebugLevel
	default:
		return logrus.WarnLevel
	}
}

// newLogger builds the CLI logger writing to stderr and, when configured,
// to a rotating log file. The returned closer releases the file.
func newLogger(stderr io.Writer, opts logOptions) (*logrus.Logger, io.Closer) {
	logger := logrus.New()
	logger.SetLevel(logLevel(opts.quiet, opts.verbose))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: opts.file.File == "",
		FullTimestamp:    true,
	})

	if opts.file.File == "" {
		logger.SetOutput(stderr)
		return logger, nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.file.File,
		MaxSize:    orDefault(opts.file.MaxSizeMB, config.DefaultLogSizeMB),
		MaxBackups: orDefault(opts.file.MaxBackups, config.DefaultLogBackups),
		MaxAge:     orDefault(opts.file.MaxAgeDays, config.DefaultLogAgeDays),
		Compress:   opts.file.Compress,
	}
	logger.SetOutput(io.MultiWriter(stderr, rotator))
	return logger, rotator
}

// orDefault returns v, or def when v is zero.
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
