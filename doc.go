// Package pdf2md converts the text of PDF documents to Markdown.
//
// # Quick Start
//
// Create a converter and convert PDF bytes:
//
//	conv := pdf2md.NewConverter()
//
//	result, err := conv.Convert(ctx, pdf2md.Input{PDF: data})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.md", []byte(result.Markdown), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Text extraction: each page yields positioned fragments (ledongthuc/pdf)
//  2. Line reconstruction: fragments closer than GapThreshold vertically
//     share a line; every line becomes its own paragraph
//  3. Page joining: pages are separated by a horizontal rule
//  4. Formatting: short paragraphs followed by a longer one become "##"
//     headings, bullet glyphs become "-", ordered markers are normalized,
//     and runs of blank lines are collapsed
//
// Pages are processed strictly in order; a failure on any page aborts the
// whole document.
//
// # Pure Functions
//
// Stages 2-4 do not need a PDF at all. Use ConvertPages with fragments from
// any extraction layer:
//
//	md := pdf2md.ConvertPages([][]pdf2md.TextFragment{
//	    {{Text: "Chapter One", Y: 700}, {Text: "Body text that follows.", Y: 650}},
//	})
//
// Or plug a custom provider into ConvertSource by implementing PageSource.
//
// # Errors
//
// Extraction failures match ErrExtraction with errors.Is. Use ErrCorruptPDF
// and ErrPasswordProtected to tell damaged documents from protected ones:
//
//	if errors.Is(err, pdf2md.ErrPasswordProtected) {
//	    // ask for a password and retry with Input.Password
//	}
//
// # Limitations
//
// Heading detection relies on paragraph length only: there is no font size
// or weight signal in extracted text. Only "##" headings are produced.
// Tables, images, emphasis and OCR are not supported.
package pdf2md
