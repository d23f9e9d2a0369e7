package pdfsource

import (
	"errors"
	"fmt"
)

// ErrExtraction is the parent of every failure reported by this package.
var ErrExtraction = errors.New("PDF text extraction failed")

// Extraction failure kinds. Both match ErrExtraction with errors.Is.
var (
	ErrCorrupt           = fmt.Errorf("%w: invalid or corrupted PDF", ErrExtraction)
	ErrPasswordProtected = fmt.Errorf("%w: PDF is password-protected", ErrExtraction)
	ErrPageOutOfRange    = fmt.Errorf("%w: page out of range", ErrExtraction)
)
