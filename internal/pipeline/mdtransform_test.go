package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNormalizeBullets - Bullet glyph unification
// ---------------------------------------------------------------------------

func TestNormalizeBullets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"round bullet", "• item", "- item"},
		{"middle dot", "· item", "- item"},
		{"small square", "▪ item", "- item"},
		{"triangle", "▸ item", "- item"},
		{"black square", "■ item", "- item"},
		{"dash with extra spaces", "-    item", "- item"},
		{"asterisk", "* item", "- item"},
		{"tab after glyph", "•\titem", "- item"},
		{"glyph without space untouched", "•item", "•item"},
		{"horizontal rule untouched", "---", "---"},
		{"glyph mid-line untouched", "a • b", "a • b"},
		{"every line rewritten", "• a\ntext\n■ b", "- a\ntext\n- b"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeBullets(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeBullets(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeOrderedItems - Ordered marker spacing
// ---------------------------------------------------------------------------

func TestNormalizeOrderedItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normal", "1. item", "1. item"},
		{"extra spaces", "2.     item", "2. item"},
		{"tab", "10.\titem", "10. item"},
		{"numeral kept", "007. agent", "007. agent"},
		{"no space untouched", "3.item", "3.item"},
		{"decimal number untouched", "3.14 is pi", "3.14 is pi"},
		{"every line rewritten", "1.  a\n2.   b", "1. a\n2. b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeOrderedItems(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeOrderedItems(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCompressBlankLines - Blank-line collapse
// ---------------------------------------------------------------------------

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single blank line unchanged", "a\n\nb", "a\n\nb"},
		{"three newlines collapsed", "a\n\n\nb", "a\n\nb"},
		{"five newlines collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"multiple groups", "a\n\n\n\nb\n\n\n\n\nc", "a\n\nb\n\nc"},
		{"single newline unchanged", "a\nb", "a\nb"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CompressBlankLines(tt.input)
			if got != tt.expected {
				t.Errorf("CompressBlankLines(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalization_Idempotent - Applying list normalization twice
// ---------------------------------------------------------------------------

func TestNormalization_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"• one\n· two\n▪ three\n▸ four\n■ five\n- six\n* seven",
		"1.   first\n2.\tsecond\n10.  tenth",
		"## Heading\n\n•  mixed\n\n3.    item\n\nplain text",
		"---",
		strings.Repeat("•  x\n", 20),
	}

	normalize := func(s string) string {
		return NormalizeOrderedItems(NormalizeBullets(s))
	}

	for _, in := range inputs {
		once := normalize(in)
		twice := normalize(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
