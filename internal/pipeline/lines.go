package pipeline

import (
	"math"
	"strings"
)

// GapThreshold is the vertical distance, in PDF user-space units, above which
// two consecutive fragments belong to different lines. A difference of
// exactly GapThreshold still merges. There is no notion of font size or
// baseline here.
const GapThreshold = 5.0

// Separators used between lines and between pages.
const (
	ParagraphBreak = "\n\n"
	PageSeparator  = "\n\n---\n\n"
)

// TextFragment is one atomic string of text with its vertical position, as
// reported by the text provider. Fragments arrive in reading order.
type TextFragment struct {
	Text string
	Y    float64
}

// ReconstructLines groups a page's fragments into lines and returns the page
// text block. Each completed line is followed by ParagraphBreak; the final
// line is not. Fragments are space-joined and lines trimmed. Zero fragments
// yield an empty string.
func ReconstructLines(fragments []TextFragment) string {
	var (
		out     strings.Builder
		current strings.Builder
		lastY   float64
		hasY    bool
	)

	for _, f := range fragments {
		if hasY && math.Abs(f.Y-lastY) > GapThreshold {
			if line := strings.TrimSpace(current.String()); line != "" {
				out.WriteString(line)
				out.WriteString(ParagraphBreak)
			}
			current.Reset()
		}
		current.WriteString(f.Text)
		current.WriteByte(' ')
		lastY = f.Y
		hasY = true
	}

	if line := strings.TrimSpace(current.String()); line != "" {
		out.WriteString(line)
	}
	return out.String()
}

// JoinPages concatenates page text blocks with PageSeparator between them.
// No separator follows the last page. Empty pages are kept in place.
func JoinPages(pages []string) string {
	return strings.Join(pages, PageSeparator)
}
