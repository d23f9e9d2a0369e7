package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// outlineParser is shared across calls; goldmark parsers are safe for concurrent use.
var outlineParser parser.Parser = newGoldmark().Parser()

// OutlineHeading is one heading found in generated Markdown.
type OutlineHeading struct {
	Level int
	Text  string
	ID    string
}

// Outline parses Markdown and lists its headings in document order.
func Outline(content string) []OutlineHeading {
	source := []byte(content)
	doc := outlineParser.Parse(text.NewReader(source))

	var headings []OutlineHeading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		oh := OutlineHeading{
			Level: h.Level,
			Text:  inlineText(h, source),
		}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				oh.ID = string(b)
			}
		}
		headings = append(headings, oh)
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// inlineText concatenates the text segments under n.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
