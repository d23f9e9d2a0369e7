// Package pdfsource reads positioned text from PDF documents.
//
// It adapts github.com/ledongthuc/pdf to the page-at-a-time contract used by
// the conversion pipeline: a document reports its page count and yields, for
// each page, the text runs in content-stream order together with their
// vertical position.
//
// Glyphs reported by the PDF library are merged into runs while they share a
// baseline and sit next to each other horizontally. Run text is normalized
// with NFKC so typographic ligatures ("ﬁ", "ﬂ") read as plain letters.
//
// The library panics on some malformed content streams; those panics are
// recovered and reported as ErrCorrupt.
package pdfsource
