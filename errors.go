package pdf2md

import (
	"errors"

	"github.com/alnah/go-pdf2md/internal/pdfsource"
	"github.com/alnah/go-pdf2md/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyPDF     = errors.New("PDF content cannot be empty")
	ErrFileTooLarge = errors.New("PDF exceeds maximum size")
	ErrNilSource    = errors.New("page source cannot be nil")

	// ErrInternal reports a recovered panic outside the PDF library.
	ErrInternal = errors.New("internal error")

	// ErrHTMLConversion reports a failure while rendering the HTML preview.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)

// Extraction errors. ErrCorruptPDF and ErrPasswordProtected both match
// ErrExtraction with errors.Is.
var (
	ErrExtraction        = pdfsource.ErrExtraction
	ErrCorruptPDF        = pdfsource.ErrCorrupt
	ErrPasswordProtected = pdfsource.ErrPasswordProtected
	ErrPageOutOfRange    = pdfsource.ErrPageOutOfRange
)
