// Package testpdf builds small, valid PDF documents for tests and the
// doctor self-check.
//
// Documents use the standard Helvetica font with WinAnsi encoding and one
// uncompressed content stream per page. Each Line becomes a single text
// object drawn at the given baseline.
package testpdf

import (
	"bytes"
	"fmt"
	"strings"
)

// Line is one line of text drawn at (X, Y) in user-space units.
type Line struct {
	Text string
	X    float64
	Y    float64
}

// Options tweak the generated document.
type Options struct {
	Title string // Info dictionary title, omitted when empty
}

// Build returns a PDF with one page per element of pages.
func Build(opts Options, pages ...[]Line) []byte {
	var objects []string

	// 1: catalog, 2: page tree, 3: font; pages and streams follow.
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")
	objects = append(objects, "") // page tree, filled once kids are known
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	kids := make([]string, 0, len(pages))
	for _, lines := range pages {
		stream := contentStream(lines)
		pageNum := len(objects) + 1
		streamNum := pageNum + 1
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			streamNum,
		))
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	infoRef := ""
	if opts.Title != "" {
		objects = append(objects, fmt.Sprintf("<< /Title (%s) >>", escape(opts.Title)))
		infoRef = fmt.Sprintf(" /Info %d 0 R", len(objects))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R%s >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, infoRef, xref)

	return buf.Bytes()
}

// contentStream draws each line in its own text object.
func contentStream(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "BT /F1 12 Tf %.2f %.2f Td (%s) Tj ET\n", l.X, l.Y, escape(l.Text))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// escape protects PDF literal string delimiters.
func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
