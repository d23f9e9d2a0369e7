package main

import (
	"errors"
	"os"

	pdf2md "github.com/alnah/go-pdf2md"
	"github.com/alnah/go-pdf2md/internal/config"
)

// Exit codes for pdf2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitExtraction = 4 // Corrupt or password-protected PDF
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Extraction errors (exit 4)
	if errors.Is(err, pdf2md.ErrExtraction) {
		return ExitExtraction
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadPDF) ||
		errors.Is(err, ErrWriteMarkdown) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoPDFs) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRange) ||
		errors.Is(err, pdf2md.ErrEmptyPDF) ||
		errors.Is(err, pdf2md.ErrFileTooLarge) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidOutput) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
