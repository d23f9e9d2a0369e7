package pdf2md

import "github.com/alnah/go-pdf2md/internal/pipeline"

// ReconstructLines groups one page's fragments into lines. Fragments whose
// vertical distance from the previous fragment exceeds GapThreshold start a
// new line. Lines are separated by a blank line.
func ReconstructLines(fragments []TextFragment) string {
	return pipeline.ReconstructLines(fragments)
}

// JoinPages joins page text blocks with PageSeparator.
func JoinPages(pages []string) string {
	return pipeline.JoinPages(pages)
}

// FormatMarkdown classifies paragraphs of raw page text and returns Markdown.
func FormatMarkdown(raw string) string {
	return pipeline.FormatMarkdown(raw)
}

// ConvertPages runs line reconstruction, page joining and formatting over
// already-extracted fragments. The result is deterministic for a given input.
func ConvertPages(pages [][]TextFragment) string {
	texts := make([]string, len(pages))
	for i, fragments := range pages {
		texts[i] = pipeline.ReconstructLines(fragments)
	}
	return pipeline.FormatMarkdown(pipeline.JoinPages(texts))
}
