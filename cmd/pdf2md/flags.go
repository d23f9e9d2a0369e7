package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// stdoutPath selects standard output as the Markdown destination.
const stdoutPath = "-"

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logFile string
}

// inputFlags holds flags controlling how PDFs are read.
type inputFlags struct {
	password  string
	maxSizeMB int
}

// outputFlags holds flags for extra outputs.
type outputFlags struct {
	html    bool // Write an HTML preview next to the Markdown
	outline bool // Print the heading outline of each document
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	input      inputFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing, statistics and debug logs")
	fs.StringVar(&f.logFile, "log-file", "", "also write logs to this file (rotated)")
}

// addInputFlags adds PDF reading flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVar(&f.password, "password", "", "user password for protected PDFs")
	fs.IntVar(&f.maxSizeMB, "max-size", 0, "largest accepted PDF in MB (0 = config or 50)")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "write an HTML preview next to the Markdown")
	fs.BoolVar(&f.outline, "outline", false, "print the heading outline")
}

// newConvertFlagSet registers every convert flag into f.
// Shared by parsing and completion so both see the same flags.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file, directory, or - for stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addOutputFlags(fs, &f.outputMode)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
