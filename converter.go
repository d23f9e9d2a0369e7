package pdf2md

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-pdf2md/internal/pdfsource"
	"github.com/alnah/go-pdf2md/internal/pipeline"
)

// PageSource provides positioned text one page at a time.
// Pages are numbered from 1.
type PageSource interface {
	NumPages() int
	PageFragments(ctx context.Context, n int) ([]TextFragment, error)
}

// SourceOpener turns PDF bytes into a PageSource.
type SourceOpener func(data []byte, password string) (PageSource, error)

// titledSource is implemented by sources that know their document title.
type titledSource interface {
	Title() string
}

// Compile-time interface implementation checks.
var (
	_ PageSource             = (*pdfsource.Document)(nil)
	_ titledSource           = (*pdfsource.Document)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the PDF-to-Markdown conversion pipeline.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	openSource    SourceOpener
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithPassword, WithMaxSize).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg:           converterConfig{maxSize: DefaultMaxSize},
		openSource:    openPDF,
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// openPDF opens PDF bytes with the built-in extraction layer.
func openPDF(data []byte, password string) (PageSource, error) {
	doc, err := pdfsource.Open(data, password)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Convert extracts the text of input.PDF and returns it as Markdown.
// Extraction failures are returned wrapped; use errors.Is with
// ErrCorruptPDF or ErrPasswordProtected to tell them apart.
// Panics are recovered and reported as ErrInternal; panics inside the PDF
// library are already reported as ErrCorruptPDF by the extraction layer.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	password := input.Password
	if password == "" {
		password = c.cfg.password
	}

	src, err := c.openSource(input.PDF, password)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	return c.convert(ctx, src, input.HTML || c.cfg.html)
}

// ConvertSource runs the pipeline over an arbitrary PageSource.
// Pages are read strictly in order; the first error aborts the conversion
// and is returned with the page number, unchanged for errors.Is.
func (c *Converter) ConvertSource(ctx context.Context, src PageSource) (*ConvertResult, error) {
	return c.convert(ctx, src, c.cfg.html)
}

func (c *Converter) convert(ctx context.Context, src PageSource, withHTML bool) (*ConvertResult, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	n := src.NumPages()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fragments, err := src.PageFragments(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", i, err)
		}
		pages = append(pages, pipeline.ReconstructLines(fragments))
	}

	raw := pipeline.JoinPages(pages)
	md := pipeline.FormatMarkdown(raw)

	res := &ConvertResult{
		Markdown: md,
		Pages:    n,
		Stats:    computeStats(raw),
		Outline:  pipeline.Outline(md),
	}
	if t, ok := src.(titledSource); ok {
		res.Title = t.Title()
	}

	if withHTML {
		html, err := c.htmlConverter.ToHTML(ctx, md, res.Title)
		if err != nil {
			return nil, fmt.Errorf("rendering HTML: %w", err)
		}
		res.HTML = []byte(html)
	}

	return res, nil
}

// validateInput checks that required fields are present and within limits.
func (c *Converter) validateInput(input Input) error {
	if len(input.PDF) == 0 {
		return ErrEmptyPDF
	}
	if int64(len(input.PDF)) > c.cfg.maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(input.PDF), c.cfg.maxSize)
	}
	return nil
}

// computeStats counts classified paragraphs, ignoring page separators.
func computeStats(raw string) Stats {
	var s Stats
	for _, b := range pipeline.Classify(pipeline.SplitParagraphs(raw)) {
		if strings.TrimSpace(b.Text) == "---" {
			continue
		}
		s.Paragraphs++
		switch b.Kind {
		case pipeline.Heading:
			s.Headings++
		case pipeline.OrderedItem, pipeline.UnorderedItem:
			s.ListItems++
		}
	}
	return s
}
