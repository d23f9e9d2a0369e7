package pdfsource

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-pdf2md/internal/pipeline"
)

// Glyph merging tolerances. Ratios are relative to the font size of the
// previous glyph.
const (
	// baselineTolerance is the largest vertical drift, in user-space units,
	// still treated as the same baseline.
	baselineTolerance = 0.5

	// glyphWidthRatio estimates a glyph's advance when the library reports
	// no width.
	glyphWidthRatio = 0.55

	// spaceGapRatio is the horizontal gap above which a space is inserted.
	spaceGapRatio = 0.2

	// runBreakRatio is the horizontal gap above which a new run starts.
	runBreakRatio = 2.0

	// backtrackTolerance allows glyphs drawn slightly left of the previous one.
	backtrackTolerance = 1.0

	// fallbackFontSize is used when a font reports a non-positive size.
	fallbackFontSize = 10.0
)

// run is a sequence of glyphs on one baseline.
type run struct {
	text  strings.Builder
	y     float64
	lastX float64
	lastW float64
	size  float64
}

// add appends glyph g to the run.
func (r *run) add(g pdf.Text) {
	r.text.WriteString(g.S)
	r.lastX = g.X
	r.lastW = glyphWidth(g)
	r.size = fontSize(g.FontSize)
}

// gapTo returns the horizontal distance between the end of the run and g.
func (r *run) gapTo(g pdf.Text) float64 {
	return g.X - (r.lastX + r.lastW)
}

func (r *run) endsWithSpace() bool {
	s := r.text.String()
	return s != "" && s[len(s)-1] == ' '
}

// mergeGlyphs merges glyphs, in content order, into text fragments.
// Whitespace-only runs are dropped.
func mergeGlyphs(glyphs []pdf.Text) []pipeline.TextFragment {
	var (
		fragments []pipeline.TextFragment
		cur       *run
	)

	flush := func() {
		if cur == nil {
			return
		}
		s := strings.TrimSpace(norm.NFKC.String(cur.text.String()))
		if s != "" {
			fragments = append(fragments, pipeline.TextFragment{Text: s, Y: cur.y})
		}
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if cur != nil && continuesRun(cur, g) {
			if cur.gapTo(g) > spaceGapRatio*cur.size && !cur.endsWithSpace() && g.S != " " {
				cur.text.WriteByte(' ')
			}
			cur.add(g)
			continue
		}
		flush()
		cur = &run{y: g.Y}
		cur.add(g)
	}
	flush()

	return fragments
}

// continuesRun reports whether g extends r on the same baseline.
func continuesRun(r *run, g pdf.Text) bool {
	if math.Abs(g.Y-r.y) > baselineTolerance {
		return false
	}
	if g.X < r.lastX-backtrackTolerance {
		return false
	}
	return r.gapTo(g) <= runBreakRatio*r.size
}

// glyphWidth returns the reported width, or an estimate from the font size.
func glyphWidth(g pdf.Text) float64 {
	if g.W > 0 {
		return g.W
	}
	return float64(utf8.RuneCountInString(g.S)) * fontSize(g.FontSize) * glyphWidthRatio
}

// fontSize guards against zero sizes reported for Type3 or broken fonts.
func fontSize(size float64) float64 {
	if size <= 0 {
		return fallbackFontSize
	}
	return size
}
