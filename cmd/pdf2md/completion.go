package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument values, e.g. shell names
	FilePattern string   // glob for file arguments (e.g., "*.pdf")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	FileGlob string // file glob pattern
	IsDir    bool   // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config":   {FileGlob: "*.yaml,*.yml"},
	"log-file": {FileGlob: "*.log"},
	"output":   {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	convertFlags := extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}))

	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert PDF files to Markdown",
			Flags:       convertFlags,
			FilePattern: "*.pdf",
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: []string{"convert", "version", "help", "completion", "doctor"}},
		{Name: "completion", Desc: "Generate shell completion script", Args: supportedShells()},
		{Name: "doctor", Desc: "Check that conversion works on this system", Args: []string{"--json"}},
	}
}

// supportedShells lists shell names in a stable order.
func supportedShells() []string {
	shells := []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
	sort.Strings(shells)
	return shells
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells(), ", "))
	}
}

// generateBash writes a bash completion function.
func generateBash(w io.Writer) error {
	var b strings.Builder
	cmds := getCommands()

	b.WriteString("# bash completion for pdf2md\n")
	b.WriteString("_pdf2md() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")

	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(names, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Flags) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, f := range c.Flags {
				pattern := "--" + f.Long
				if f.Short != "" {
					pattern += "|-" + f.Short
				}
				switch f.Type {
				case flagFile:
					fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", pattern)
				case flagDir:
					fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -d -f -- \"$cur\")); return ;;\n", pattern)
				case flagString, flagInt:
					fmt.Fprintf(&b, "        %s) return ;;\n", pattern)
				}
			}
			b.WriteString("        esac\n")
			fmt.Fprintf(&b, "        if [[ \"$cur\" == -* ]]; then\n            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flagWords(c.Flags))
			b.WriteString("        else\n")
			b.WriteString("            COMPREPLY=($(compgen -f -X '!*.@(pdf|PDF)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n")
			b.WriteString("        fi\n")
		} else if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _pdf2md pdf2md\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// flagWords lists every flag spelling for word completion.
func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// generateZsh writes a zsh completion function for compdef.
func generateZsh(w io.Writer) error {
	var b strings.Builder
	cmds := getCommands()

	b.WriteString("#compdef pdf2md\n\n")
	b.WriteString("_pdf2md() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		switch {
		case len(c.Flags) > 0:
			b.WriteString("        _arguments \\\n")
			for _, f := range c.Flags {
				fmt.Fprintf(&b, "            %s \\\n", zshFlagSpec(f))
			}
			fmt.Fprintf(&b, "            '*:PDF file:_files -g \"%s\"'\n", c.FilePattern)
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
		}
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _pdf2md pdf2md\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec renders one _arguments spec for a flag.
func zshFlagSpec(f flagDef) string {
	desc := zshEscape(f.Desc)

	action := ""
	switch f.Type {
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		action = fmt.Sprintf(":file:_files -g \"%s\"", strings.Join(globs, " "))
	case flagDir:
		action = ":path:_files"
	case flagString, flagInt:
		action = ":value:"
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

// zshEscape escapes characters with meaning inside zsh completion specs.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// generateFish writes fish completion commands.
func generateFish(w io.Writer) error {
	var b strings.Builder
	cmds := getCommands()

	b.WriteString("# fish completion for pdf2md\n")
	b.WriteString("complete -c pdf2md -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c pdf2md -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", c.Name)
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c pdf2md -n '%s' -F\n", cond)
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c pdf2md -n '%s' -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c pdf2md -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagFile, flagDir:
				line += " -r -F"
			case flagString, flagInt:
				line += " -r"
			}
			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			b.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fishEscape escapes single quotes for fish strings.
func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2md completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(pdf2md completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(pdf2md completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    pdf2md completion fish > ~/.config/fish/completions/pdf2md.fish")
}
