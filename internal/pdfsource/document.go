package pdfsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/alnah/go-pdf2md/internal/pipeline"
)

// Document is an opened PDF ready for page-by-page text extraction.
// A Document is not safe for concurrent use.
type Document struct {
	reader *pdf.Reader
	pages  int
}

// Open parses PDF bytes. An empty password opens unprotected documents and
// documents protected only by an owner password.
func Open(data []byte, password string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrCorrupt, r)
		}
	}()

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrCorrupt)
	}

	ra := bytes.NewReader(data)
	var reader *pdf.Reader
	if password == "" {
		reader, err = pdf.NewReader(ra, int64(len(data)))
	} else {
		reader, err = pdf.NewReaderEncrypted(ra, int64(len(data)), passwordOnce(password))
	}
	if err != nil {
		return nil, classifyOpenError(err)
	}

	return &Document{reader: reader, pages: reader.NumPage()}, nil
}

// passwordOnce yields password on the first call and "" afterwards, which
// tells the PDF library to stop retrying.
func passwordOnce(password string) func() string {
	used := false
	return func() string {
		if used {
			return ""
		}
		used = true
		return password
	}
}

// classifyOpenError maps PDF library errors to extraction failure kinds.
func classifyOpenError(err error) error {
	if errors.Is(err, pdf.ErrInvalidPassword) || strings.Contains(strings.ToLower(err.Error()), "encrypt") {
		return fmt.Errorf("%w: %v", ErrPasswordProtected, err)
	}
	return fmt.Errorf("%w: %v", ErrCorrupt, err)
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.pages
}

// PageFragments returns the text runs of page n (1-based) in content order.
// Pages without a content dictionary yield no fragments.
func (d *Document) PageFragments(ctx context.Context, n int) (fragments []pipeline.TextFragment, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 1 || n > d.pages {
		return nil, fmt.Errorf("%w: %d (document has %d)", ErrPageOutOfRange, n, d.pages)
	}

	defer func() {
		if r := recover(); r != nil {
			fragments, err = nil, fmt.Errorf("%w: page %d: %v", ErrCorrupt, n, r)
		}
	}()

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}
	return mergeGlyphs(page.Content().Text), nil
}

// Title returns the document title from the Info dictionary, if any.
func (d *Document) Title() (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()

	info := d.reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return strings.TrimSpace(info.Key("Title").Text())
}
