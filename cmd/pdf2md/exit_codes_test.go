package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pdf2md "github.com/alnah/go-pdf2md"
	"github.com/alnah/go-pdf2md/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unexpected", errors.New("boom"), ExitGeneral},
		{"recovered panic", fmt.Errorf("%w: boom", pdf2md.ErrInternal), ExitGeneral},

		{"corrupt", fmt.Errorf("opening PDF: %w", pdf2md.ErrCorruptPDF), ExitExtraction},
		{"password", pdf2md.ErrPasswordProtected, ExitExtraction},
		{"generic extraction", pdf2md.ErrExtraction, ExitExtraction},

		{"not found", fmt.Errorf("discovering files: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read", ErrReadPDF, ExitIO},
		{"write", ErrWriteMarkdown, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no PDFs", ErrNoPDFs, ExitIO},

		{"config missing", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"field range", config.ErrFieldRange, ExitUsage},
		{"empty PDF", pdf2md.ErrEmptyPDF, ExitUsage},
		{"too large", pdf2md.ErrFileTooLarge, ExitUsage},
		{"extension", ErrInvalidExtension, ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
		{"output", ErrInvalidOutput, ExitUsage},
		{"shell", ErrUnsupportedShell, ExitUsage},
		{"command", ErrUnknownCommand, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
