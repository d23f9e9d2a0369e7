// Package pipeline implements the text-to-Markdown reconstruction pipeline.
//
// This package handles the stages that run after a PDF text provider has
// produced positioned fragments for each page:
//   - Line reconstruction (fragments grouped into visual lines by vertical gap)
//   - Page joining with a horizontal-rule separator
//   - Paragraph classification (heading, list item, body)
//   - Line-oriented Markdown normalization (bullets, ordered items, blank lines)
//   - Optional HTML preview and heading outline via Goldmark
//
// PDF decoding is handled separately by internal/pdfsource. Every stage in
// this package is a pure function of its input: no I/O, no shared state.
package pipeline
