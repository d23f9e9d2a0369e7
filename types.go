package pdf2md

import (
	"github.com/alnah/go-pdf2md/internal/pipeline"
)

// Heuristic constants. They are fixed; changing them changes which lines
// become headings and where lines break.
const (
	// GapThreshold is the vertical distance above which fragments start a new line.
	GapThreshold = pipeline.GapThreshold

	// MinHeadingLength and MaxHeadingLength bound heading length in code points.
	MinHeadingLength = pipeline.MinHeadingLength
	MaxHeadingLength = pipeline.MaxHeadingLength

	// PageSeparator is inserted between the text of consecutive pages.
	PageSeparator = pipeline.PageSeparator
)

// DefaultMaxSize is the largest PDF accepted by Convert unless overridden.
const DefaultMaxSize int64 = 50 << 20

// TextFragment is one piece of text with its vertical position, in reading order.
type TextFragment = pipeline.TextFragment

// Heading is one entry of the generated document outline.
type Heading = pipeline.OutlineHeading

// Input contains conversion parameters.
type Input struct {
	PDF      []byte // PDF content (required)
	Password string // user password for protected documents (optional)
	HTML     bool   // also render an HTML preview
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	Markdown string
	HTML     []byte    // nil unless requested
	Title    string    // document title from PDF metadata, if any
	Pages    int       // pages read
	Stats    Stats     // paragraph classification counts
	Outline  []Heading // headings in document order
}

// Stats counts classified paragraphs.
type Stats struct {
	Paragraphs int
	Headings   int
	ListItems  int
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	password string
	maxSize  int64
	html     bool
}

// WithPassword sets the default password for protected documents.
// Input.Password takes precedence when set.
func WithPassword(password string) Option {
	return func(c *Converter) {
		c.cfg.password = password
	}
}

// WithMaxSize sets the largest accepted PDF in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxSize(n int64) Option {
	if n <= 0 {
		panic("pdf2md: WithMaxSize size must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxSize = n
	}
}

// WithHTML enables the HTML preview for every conversion.
func WithHTML() Option {
	return func(c *Converter) {
		c.cfg.html = true
	}
}

// WithSourceOpener replaces how PDF bytes are turned into a PageSource.
func WithSourceOpener(open SourceOpener) Option {
	return func(c *Converter) {
		c.openSource = open
	}
}
