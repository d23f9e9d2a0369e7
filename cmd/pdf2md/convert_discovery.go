package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	pdf2md "github.com/alnah/go-pdf2md"
	"github.com/alnah/go-pdf2md/internal/fileutil"
)

// File extensions handled by the CLI.
const (
	pdfExt      = ".pdf"
	markdownExt = ".md"
	htmlExt     = ".html"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .pdf extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidOutput      = errors.New("invalid output target")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string // stdoutPath for standard output
}

// discoverFiles finds all PDF files to convert.
// Directories are walked recursively in lexical order.
func discoverFiles(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validatePDFExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, output, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	if output == stdoutPath || fileutil.HasExtension(output, markdownExt) {
		return nil, fmt.Errorf("%w: %q needs a single PDF input, got directory %s", ErrInvalidOutput, output, inputPath)
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasExtension(path, pdfExt) {
			return nil
		}
		outPath := resolveOutputPath(path, output, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the Markdown output path for a PDF file.
// output may be empty (next to the source), a .md file, stdoutPath, or a
// directory; under a directory the layout below baseInputDir is mirrored.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	base := fileutil.ReplaceExtension(filepath.Base(inputPath), markdownExt)

	switch {
	case output == "":
		return filepath.Join(filepath.Dir(inputPath), base)
	case output == stdoutPath:
		return stdoutPath
	case fileutil.HasExtension(output, markdownExt):
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(output, base)
}

// validatePDFExtension checks that the file has a .pdf extension.
func validatePDFExtension(path string) error {
	if !fileutil.HasExtension(path, pdfExt) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > pdf2md.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, pdf2md.MaxPoolSize)
	}
	return nil
}

// htmlOutputPath returns the HTML preview path for a Markdown path.
func htmlOutputPath(mdPath string) string {
	return fileutil.ReplaceExtension(mdPath, htmlExt)
}
