// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"strings"
)

// ForPasswordProtected returns hints for documents that could not be decrypted.
// passwordGiven tells whether a password was already supplied.
func ForPasswordProtected(passwordGiven bool) string {
	if passwordGiven {
		return format("the password was rejected; check it or use the document's user password")
	}

	var hints []string
	hints = append(hints, "use --password")
	if os.Getenv("PDF2MD_PASSWORD") == "" {
		hints = append(hints, "or set PDF2MD_PASSWORD")
	}
	return format(strings.Join(hints, " "))
}

// ForCorruptPDF returns hints for documents the parser rejected.
func ForCorruptPDF() string {
	return formatHints([]string{
		"file may be damaged or not a PDF",
		"try re-saving it with a PDF viewer",
	})
}

// ForEmptyText returns a hint for documents with no extractable text.
func ForEmptyText() string {
	return format("scanned documents have no text layer; OCR is not supported")
}

// ForFileTooLarge returns a hint for inputs over the size limit.
func ForFileTooLarge(limitMB int) string {
	return format(fmt.Sprintf("raise the limit with --max-size (currently %d MB)", limitMB))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-pdf2md/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-pdf2md) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-pdf2md") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
