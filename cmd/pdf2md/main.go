package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdf2md/internal/config"
	"github.com/alnah/go-pdf2md/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an unrecognized command name.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	// "pdf2md file.pdf" is shorthand for "pdf2md convert file.pdf"
	if !isCommand(cmd) && looksLikePDF(cmd) {
		cmd, rest = "convert", args[1:]
	}

	switch cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-pdf2md %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		if err := runCompletion(rest, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}
}

// runConvertCmd parses convert flags and runs the conversion under a
// context canceled by shutdown signals.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintForCommand(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// hintForCommand returns hints for errors raised before any file is converted.
// Per-file failures carry their own hints in the result lines.
func hintForCommand(err error) string {
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		return hints.ForConfigNotFound(notFound.Paths)
	}
	return ""
}

// isCommand reports whether s names a command.
func isCommand(s string) bool {
	switch s {
	case "convert", "version", "help", "completion", "doctor":
		return true
	default:
		return false
	}
}

// looksLikePDF reports whether s is a path with a .pdf extension.
func looksLikePDF(s string) bool {
	return validatePDFExtension(s) == nil
}
