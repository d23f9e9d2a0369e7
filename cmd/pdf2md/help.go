package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2md <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert PDF files to Markdown")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  doctor      Check that conversion works on this system")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pdf2md help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2md convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extract the text of PDF files and write it as Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    PDF file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .md file, directory, or - for stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --password <s>        User password for protected PDFs")
	fmt.Fprintln(w, "      --max-size <mb>       Largest accepted PDF in MB (default 50)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extras:")
	fmt.Fprintln(w, "      --html                Write an HTML preview next to the Markdown")
	fmt.Fprintln(w, "      --outline             Print the heading outline")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing, statistics and debug logs")
	fmt.Fprintln(w, "      --log-file <path>     Also write logs to a rotated file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PDF2MD_CONFIG, PDF2MD_INPUT_DIR, PDF2MD_OUTPUT_DIR, PDF2MD_PASSWORD,")
	fmt.Fprintln(w, "  PDF2MD_WORKERS, PDF2MD_MAX_SIZE_MB, PDF2MD_LOG_FILE")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pdf2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pdf2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: pdf2md doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Convert a generated sample PDF, resolve the config file and report")
		fmt.Fprintln(env.Stdout, "the platform, container and CI environment.")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Flags:")
		fmt.Fprintln(env.Stdout, "  --json    Output results as JSON")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
