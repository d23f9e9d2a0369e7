package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heading length window, in code points, inclusive on both ends.
const (
	MinHeadingLength = 6
	MaxHeadingLength = 59
)

// HeadingPrefix is the only heading level ever produced.
const HeadingPrefix = "## "

// BulletGlyphs lists the leading characters treated as unordered-list markers.
const BulletGlyphs = "•·▪▸■-*"

var (
	orderedMarker = regexp.MustCompile(`^\d+\.`)
	orderedItem   = regexp.MustCompile(`^\d+\.\s+\S`)
	bulletItem    = regexp.MustCompile(`^[•·▪▸■*-]\s+\S`)
)

// BlockKind is the classification of a paragraph.
type BlockKind int

const (
	Body BlockKind = iota
	Heading
	OrderedItem
	UnorderedItem
)

// String returns a lowercase name for the kind.
func (k BlockKind) String() string {
	switch k {
	case Heading:
		return "heading"
	case OrderedItem:
		return "ordered-item"
	case UnorderedItem:
		return "unordered-item"
	default:
		return "body"
	}
}

// Block is a classified paragraph. Text is the trimmed paragraph, or the
// HeadingPrefix-prefixed text for headings.
type Block struct {
	Kind BlockKind
	Text string
}

// SplitParagraphs splits raw text on ParagraphBreak and drops entries that are
// blank. Entries are returned untrimmed, in their original order.
func SplitParagraphs(raw string) []string {
	parts := strings.Split(raw, ParagraphBreak)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// IsHeading reports whether paragraph reads as a section title given its
// successor. hasNext is false for the last paragraph of the document.
//
// A heading is short (MinHeadingLength..MaxHeadingLength code points), is not
// a list item, and is followed by a longer paragraph. The successor length is
// measured on its raw, untrimmed text.
func IsHeading(paragraph, next string, hasNext bool) bool {
	if !hasNext {
		return false
	}
	t := strings.TrimSpace(paragraph)
	n := utf8.RuneCountInString(t)
	if n < MinHeadingLength || n > MaxHeadingLength {
		return false
	}
	if orderedMarker.MatchString(t) || startsWithBullet(t) {
		return false
	}
	return utf8.RuneCountInString(next) > n
}

// startsWithBullet reports whether s begins with one of BulletGlyphs.
func startsWithBullet(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	return strings.ContainsRune(BulletGlyphs, r)
}

// Classify tags every paragraph independently from the pair
// (paragraphs[i], paragraphs[i+1]). The input slice is never modified, so a
// lookahead paragraph is always seen in its original form.
func Classify(paragraphs []string) []Block {
	blocks := make([]Block, len(paragraphs))
	for i, p := range paragraphs {
		var next string
		hasNext := i+1 < len(paragraphs)
		if hasNext {
			next = paragraphs[i+1]
		}
		blocks[i] = classifyOne(p, next, hasNext)
	}
	return blocks
}

func classifyOne(paragraph, next string, hasNext bool) Block {
	t := strings.TrimSpace(paragraph)
	switch {
	case IsHeading(paragraph, next, hasNext):
		return Block{Kind: Heading, Text: HeadingPrefix + t}
	case orderedItem.MatchString(t):
		return Block{Kind: OrderedItem, Text: t}
	case bulletItem.MatchString(t):
		return Block{Kind: UnorderedItem, Text: t}
	default:
		return Block{Kind: Body, Text: t}
	}
}

// FormatMarkdown turns reconstructed page text into Markdown. The steps run
// in a fixed order: paragraph split, classification, re-join, bullet
// normalization, ordered-item normalization, blank-line collapse, trim.
func FormatMarkdown(raw string) string {
	blocks := Classify(SplitParagraphs(raw))

	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text
	}

	md := strings.Join(texts, ParagraphBreak)
	md = NormalizeBullets(md)
	md = NormalizeOrderedItems(md)
	md = CompressBlankLines(md)
	return strings.TrimSpace(md)
}
