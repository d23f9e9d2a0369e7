package pdf2md

// Notes:
// - Options are checked through the unexported converterConfig they set.
// - Constant values are pinned because changing them changes which lines
//   become headings and where lines break.

import "testing"

// ---------------------------------------------------------------------------
// TestNewConverter - Defaults and options
// ---------------------------------------------------------------------------

func TestNewConverter_Defaults(t *testing.T) {
	t.Parallel()

	c := NewConverter()
	if c.cfg.maxSize != DefaultMaxSize {
		t.Errorf("maxSize = %d, want %d", c.cfg.maxSize, DefaultMaxSize)
	}
	if c.cfg.password != "" {
		t.Errorf("password = %q, want empty", c.cfg.password)
	}
	if c.cfg.html {
		t.Error("html = true, want false")
	}
	if c.openSource == nil || c.htmlConverter == nil {
		t.Error("NewConverter() left a pipeline stage unset")
	}
}

func TestNewConverter_Options(t *testing.T) {
	t.Parallel()

	c := NewConverter(WithPassword("s3cret"), WithMaxSize(1024), WithHTML())
	if c.cfg.password != "s3cret" {
		t.Errorf("password = %q, want %q", c.cfg.password, "s3cret")
	}
	if c.cfg.maxSize != 1024 {
		t.Errorf("maxSize = %d, want 1024", c.cfg.maxSize)
	}
	if !c.cfg.html {
		t.Error("html = false, want true")
	}
}

// ---------------------------------------------------------------------------
// TestHeuristicConstants - Pinned thresholds
// ---------------------------------------------------------------------------

func TestHeuristicConstants(t *testing.T) {
	t.Parallel()

	if GapThreshold != 5.0 {
		t.Errorf("GapThreshold = %v, want 5", GapThreshold)
	}
	if MinHeadingLength != 6 || MaxHeadingLength != 59 {
		t.Errorf("heading bounds = [%d, %d], want [6, 59]", MinHeadingLength, MaxHeadingLength)
	}
	if PageSeparator != "\n\n---\n\n" {
		t.Errorf("PageSeparator = %q", PageSeparator)
	}
}
