package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	pdf2md "github.com/alnah/go-pdf2md"
	"github.com/alnah/go-pdf2md/internal/fileutil"
	"github.com/alnah/go-pdf2md/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrNoPDFs        = errors.New("no PDF files found")
	ErrReadPDF       = errors.New("failed to read PDF file")
	ErrWriteMarkdown = errors.New("failed to write Markdown file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input pdf2md.Input) (*pdf2md.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*pdf2md.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	workers int
	maxSize int64     // bytes; checked before reading
	html    bool      // write HTML preview
	stdout  io.Writer // destination for stdoutPath outputs
	logger  logrus.FieldLogger
	now     func() time.Time
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	HTMLPath   string
	Err        error
	Duration   time.Duration
	Pages      int
	Title      string
	Stats      pdf2md.Stats
	Outline    []pdf2md.Heading
	Empty      bool // no text was extracted
}

// convertBatch processes files concurrently with params.workers goroutines.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(params.workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := params.now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	log := params.logger.WithField("file", f.InputPath)

	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = params.now().Sub(start)
		if err != nil {
			log.WithError(err).Debug("conversion failed")
		}
		return result
	}

	// Reject oversized files before reading them into memory
	info, err := os.Stat(f.InputPath)
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadPDF, err))
	}
	if info.Size() > params.maxSize {
		return finish(fmt.Errorf("%w: %d bytes (max %d)", pdf2md.ErrFileTooLarge, info.Size(), params.maxSize))
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadPDF, err))
	}

	log.WithField("bytes", len(content)).Debug("extracting text")

	wantHTML := params.html && f.OutputPath != stdoutPath
	res, err := conv.Convert(ctx, pdf2md.Input{PDF: content, HTML: wantHTML})
	if err != nil {
		return finish(err)
	}

	result.Pages = res.Pages
	result.Title = res.Title
	result.Stats = res.Stats
	result.Outline = res.Outline
	result.Empty = strings.TrimSpace(strings.ReplaceAll(res.Markdown, "---", "")) == ""

	if f.OutputPath == stdoutPath {
		if _, err := io.WriteString(params.stdout, res.Markdown+"\n"); err != nil {
			return finish(fmt.Errorf("%w: %w", ErrWriteMarkdown, err))
		}
		return finish(nil)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(res.Markdown+"\n"), filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrWriteMarkdown, err))
	}

	if wantHTML {
		htmlPath := htmlOutputPath(f.OutputPath)
		if err := fileutil.WriteFileAtomic(htmlPath, res.HTML, filePermissions); err != nil {
			return finish(fmt.Errorf("failed to write HTML file: %w", err))
		}
		result.HTMLPath = htmlPath
	}

	log.WithFields(logrus.Fields{
		"pages":    res.Pages,
		"headings": res.Stats.Headings,
		"output":   f.OutputPath,
	}).Debug("converted")

	return finish(nil)
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printOptions controls result reporting.
type printOptions struct {
	quiet         bool
	verbose       bool
	outline       bool
	passwordGiven bool
	limitMB       int
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failed conversions.
func printResultsWithWriter(results []ConversionResult, opts printOptions, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err, opts))
			continue
		}

		if r.Empty {
			fmt.Fprintf(env.Stderr, "WARNING %s: no text extracted%s\n", r.InputPath, hints.ForEmptyText())
		}

		if opts.quiet {
			continue
		}

		// Markdown already went to stdout; keep it clean
		if r.OutputPath == stdoutPath {
			continue
		}

		if opts.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v, %d pages, %d headings, %d list items)\n",
				r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond),
				r.Pages, r.Stats.Headings, r.Stats.ListItems)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.HTMLPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.HTMLPath)
		}
		if opts.outline {
			printOutline(env.Stdout, r)
		}
	}

	if !opts.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// printOutline lists the headings of one document, indented by level.
func printOutline(w io.Writer, r ConversionResult) {
	if r.Title != "" {
		fmt.Fprintf(w, "  %s\n", r.Title)
	}
	if len(r.Outline) == 0 {
		fmt.Fprintln(w, "  (no headings)")
		return
	}
	for _, h := range r.Outline {
		indent := strings.Repeat("  ", max(h.Level-1, 0))
		fmt.Fprintf(w, "  %s- %s\n", indent, h.Text)
	}
}

// hintFor returns an actionable hint for a conversion error, if any.
func hintFor(err error, opts printOptions) string {
	switch {
	case errors.Is(err, pdf2md.ErrPasswordProtected):
		return hints.ForPasswordProtected(opts.passwordGiven)
	case errors.Is(err, pdf2md.ErrCorruptPDF):
		return hints.ForCorruptPDF()
	case errors.Is(err, pdf2md.ErrFileTooLarge):
		return hints.ForFileTooLarge(opts.limitMB)
	default:
		return ""
	}
}
