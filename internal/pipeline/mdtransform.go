package pipeline

import "regexp"

// Precompiled line patterns. All operate in multiline mode.
var (
	// Any bullet glyph followed by whitespace and text
	bulletLine = regexp.MustCompile(`(?m)^[•·▪▸■*-]\s+(.+)$`)

	// Numeral, dot, whitespace, text
	orderedLine = regexp.MustCompile(`(?m)^(\d+)\.\s+(.+)$`)

	// Compress runs of blank lines to a single one
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeBullets rewrites every bulleted line to use "- " as its marker.
func NormalizeBullets(content string) string {
	return bulletLine.ReplaceAllString(content, "- ${1}")
}

// NormalizeOrderedItems rewrites "N.<spaces>text" lines to "N. text".
func NormalizeOrderedItems(content string) string {
	return orderedLine.ReplaceAllString(content, "${1}. ${2}")
}

// CompressBlankLines limits consecutive newlines to two.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
