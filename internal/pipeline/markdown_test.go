package pipeline

// Notes:
// - IsHeading: we test both ends of the length window (5, 6, 59, 60), list
//   markers, the last-paragraph rule and raw (untrimmed) successor length.
// - Classify: we test that lookahead always sees the original paragraph, even
//   when the successor is itself classified as a heading.
// - FormatMarkdown: we test the documented end-to-end scenarios and the order
//   of normalization steps.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSplitParagraphs - Paragraph boundaries
// ---------------------------------------------------------------------------

func TestSplitParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "one", []string{"one"}},
		{"two", "one\n\ntwo", []string{"one", "two"}},
		{"blank entries dropped", "one\n\n  \n\n\n\ntwo", []string{"one", "two"}},
		{"single newline stays inside paragraph", "a\nb\n\nc", []string{"a\nb", "c"}},
		{"untrimmed entries kept raw", " one \n\ntwo", []string{" one ", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitParagraphs(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitParagraphs() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitParagraphs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsHeading - Heading heuristic boundaries
// ---------------------------------------------------------------------------

func TestIsHeading(t *testing.T) {
	t.Parallel()

	longer := strings.Repeat("x", 200)

	tests := []struct {
		name      string
		paragraph string
		next      string
		hasNext   bool
		want      bool
	}{
		{"length 5 never heading", "Intro", longer, true, false},
		{"length 6 heading", "Ab cde", longer, true, true},
		{"length 59 heading", strings.Repeat("h", 59), longer, true, true},
		{"length 60 not heading", strings.Repeat("h", 60), longer, true, false},
		{"last paragraph", "Chapter One", "", false, false},
		{"successor shorter", "Chapter One", "short", true, false},
		{"successor equal length", "Chapter One", "Chapter Two", true, false},
		{"successor raw length counts whitespace", "Chapter One", "  Chapter Two", true, true},
		{"trimmed before measuring", "   Chapter One   ", "Chapter One!", true, true},
		{"ordered marker", "1. Introduction", longer, true, false},
		{"ordered marker without space", "12.Scope", longer, true, false},
		{"bullet glyph", "• Overview", longer, true, false},
		{"middle dot glyph", "· Overview", longer, true, false},
		{"square glyph", "▪ Overview", longer, true, false},
		{"triangle glyph", "▸ Overview", longer, true, false},
		{"black square glyph", "■ Overview", longer, true, false},
		{"dash", "- Overview", longer, true, false},
		{"asterisk", "* Overview", longer, true, false},
		{"multibyte counted as code points", "Résumé", longer, true, true},
		{"multibyte successor counted as code points", "abcdef", "ééééééé", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := IsHeading(tt.paragraph, tt.next, tt.hasNext)
			if got != tt.want {
				t.Errorf("IsHeading(%q, %q, %v) = %v, want %v", tt.paragraph, tt.next, tt.hasNext, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify - Per-paragraph classification
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	paragraphs := []string{
		"Overview",
		"Short heading",
		"This paragraph is longer than the one before it.",
		"1. First step",
		"• A bullet",
		"Closing",
	}

	want := []Block{
		{Kind: Heading, Text: "## Overview"},
		{Kind: Heading, Text: "## Short heading"},
		{Kind: Body, Text: "This paragraph is longer than the one before it."},
		{Kind: OrderedItem, Text: "1. First step"},
		{Kind: UnorderedItem, Text: "• A bullet"},
		{Kind: Body, Text: "Closing"},
	}

	got := Classify(paragraphs)
	if len(got) != len(want) {
		t.Fatalf("Classify() returned %d blocks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classify()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	// Input must not be rewritten by classification.
	if paragraphs[1] != "Short heading" {
		t.Errorf("Classify() mutated input: %q", paragraphs[1])
	}
}

func TestClassify_LookaheadUsesOriginalText(t *testing.T) {
	t.Parallel()

	// "Background!" (11) is followed by "Subsection" (10), which becomes a
	// heading itself. The lookahead length must be 10, not 13 ("## Subsection").
	paragraphs := []string{"Background!", "Subsection", strings.Repeat("b", 80)}

	got := Classify(paragraphs)
	if got[0].Kind != Body {
		t.Errorf("first paragraph kind = %v, want body", got[0].Kind)
	}
	if got[1].Kind != Heading {
		t.Errorf("second paragraph kind = %v, want heading", got[1].Kind)
	}
}

func TestBlockKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind BlockKind
		want string
	}{
		{Body, "body"},
		{Heading, "heading"},
		{OrderedItem, "ordered-item"},
		{UnorderedItem, "unordered-item"},
		{BlockKind(99), "body"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BlockKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFormatMarkdown - Full formatting pass
// ---------------------------------------------------------------------------

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "title followed by body",
			input: "Chapter One\n\nThis is a longer line of body text that follows the title.",
			want:  "## Chapter One\n\nThis is a longer line of body text that follows the title.",
		},
		{
			name:  "bullet glyph normalized",
			input: "• First item",
			want:  "- First item",
		},
		{
			name:  "square bullet normalized",
			input: "▪ First item",
			want:  "- First item",
		},
		{
			name:  "middle dot normalized",
			input: "· First item",
			want:  "- First item",
		},
		{
			name:  "asterisk normalized",
			input: "*   First item",
			want:  "- First item",
		},
		{
			name:  "ordered item spacing collapsed",
			input: "3.    Third step",
			want:  "3. Third step",
		},
		{
			name:  "page separator preserved",
			input: "Intro\n\n---\n\nDetails",
			want:  "Intro\n\n---\n\nDetails",
		},
		{
			name:  "blank paragraphs dropped",
			input: "\n\nfirst\n\n\n\n\n\nsecond\n\n",
			want:  "first\n\nsecond",
		},
		{
			name:  "short line is never a heading",
			input: "Intro\n\nThis body text is clearly longer than the intro.",
			want:  "Intro\n\nThis body text is clearly longer than the intro.",
		},
		{
			name:  "bullet lines inside a paragraph normalized",
			input: "Shopping\n• eggs\n▸ milk",
			want:  "Shopping\n- eggs\n- milk",
		},
		{
			name:  "ordered items are never headings",
			input: "1. Setup\n\nInstall the package and configure it for use.",
			want:  "1. Setup\n\nInstall the package and configure it for use.",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   body   ",
			want:  "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatMarkdown(tt.input)
			if got != tt.want {
				t.Errorf("FormatMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMarkdown_Deterministic(t *testing.T) {
	t.Parallel()

	input := "Overview\n\n• one\n\n2.  two\n\nA paragraph that is long enough to follow a title."
	first := FormatMarkdown(input)
	for i := 0; i < 10; i++ {
		if got := FormatMarkdown(input); got != first {
			t.Fatalf("run %d = %q, want %q", i, got, first)
		}
	}
}

func TestFormatMarkdown_PageSeparatorNeverHeading(t *testing.T) {
	t.Parallel()

	// The line before a page break is followed by "---" (3 chars) and so can
	// never be classified as a heading.
	got := FormatMarkdown(JoinPages([]string{"End of page one", "Start of page two is here"}))
	want := "End of page one\n\n---\n\nStart of page two is here"
	if got != want {
		t.Errorf("FormatMarkdown() = %q, want %q", got, want)
	}
}
