package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	pdf2md "github.com/alnah/go-pdf2md"
	"github.com/alnah/go-pdf2md/internal/config"
	"github.com/alnah/go-pdf2md/internal/testpdf"
)

// defaultConfigName is looked up when PDF2MD_CONFIG is unset.
const defaultConfigName = "pdf2md"

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status     string         `json:"status"` // "ready", "warnings", "errors"
	Extraction extractionInfo `json:"extraction"`
	Config     configInfo     `json:"config"`
	Env        envInfo        `json:"environment"`
	System     systemInfo     `json:"system"`
	Warnings   []string       `json:"warnings,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
}

// extractionInfo holds the result of converting a generated sample PDF.
type extractionInfo struct {
	OK       bool   `json:"ok"`
	Markdown string `json:"markdown,omitempty"`
}

// configInfo holds config file lookup results.
type configInfo struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Error string `json:"error,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string   `json:"os"`
	Arch          string   `json:"arch"`
	GoMaxProcs    int      `json:"gomaxprocs"`
	Workers       int      `json:"workers"`
	Container     bool     `json:"container"`
	ContainerHint string   `json:"container_hint,omitempty"`
	CI            bool     `json:"ci"`
	UnknownVars   []string `json:"unknown_vars,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	// Report GOMAXPROCS as convert would see it
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(func(string, ...interface{}) {})
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GoMaxProcs: runtime.GOMAXPROCS(0),
			Workers:    pdf2md.ResolvePoolSize(0),
		},
	}

	checkExtraction(result)
	checkConfig(result)
	checkEnvironment(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// sampleMarkdown is what the generated sample PDF must convert to.
const sampleMarkdown = "## Doctor Check\n\nText extraction and Markdown formatting work."

// checkExtraction converts a generated PDF end to end.
func checkExtraction(result *doctorResult) {
	data := testpdf.Build(testpdf.Options{Title: "pdf2md doctor"}, []testpdf.Line{
		{Text: "Doctor Check", X: 72, Y: 700},
		{Text: "Text extraction and Markdown formatting work.", X: 72, Y: 660},
	})

	res, err := pdf2md.NewConverter().Convert(context.Background(), pdf2md.Input{PDF: data})
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Sample PDF conversion failed: %v", err))
		return
	}

	result.Extraction.Markdown = res.Markdown
	if res.Markdown != sampleMarkdown {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Sample PDF produced unexpected Markdown: %q", res.Markdown))
		return
	}
	result.Extraction.OK = true
}

// checkConfig resolves the config file the convert command would load.
// A missing default config is normal; a broken one is an error.
func checkConfig(result *doctorResult) {
	name := os.Getenv("PDF2MD_CONFIG")
	explicit := name != ""
	if !explicit {
		name = defaultConfigName
	}
	result.Config.Name = name

	_, err := config.LoadConfig(name)
	switch {
	case err == nil:
		result.Config.Found = true
	case errors.Is(err, config.ErrConfigNotFound):
		if explicit {
			result.Errors = append(result.Errors, fmt.Sprintf("PDF2MD_CONFIG=%s: %v", name, err))
		}
	default:
		result.Config.Found = true
		result.Config.Error = err.Error()
		result.Errors = append(result.Errors, fmt.Sprintf("Config %s is invalid", name))
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	// Detect container (multi-signal approach)
	result.Env.Container, result.Env.ContainerHint = isContainer()

	// Detect CI environments
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	result.Env.UnknownVars = unknownEnvVars()
	for _, name := range result.Env.UnknownVars {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Unknown environment variable %s (typo?)", name))
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv("PDF2MD_CONTAINER") == "1" {
		return true, "PDF2MD_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used for atomic writes is usable.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	f, err := os.CreateTemp(tmpDir, "pdf2md-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "pdf2md doctor")
	fmt.Fprintln(w)

	// Extraction section
	fmt.Fprintln(w, "Extraction")
	if r.Extraction.OK {
		fmt.Fprintln(w, "  [OK] Sample PDF converted")
	} else {
		fmt.Fprintln(w, "  [ERROR] Sample PDF conversion failed")
	}
	fmt.Fprintln(w)

	// Config section
	fmt.Fprintln(w, "Config")
	switch {
	case r.Config.Error != "":
		fmt.Fprintf(w, "  [ERROR] %s: %s\n", r.Config.Name, strings.ReplaceAll(r.Config.Error, "\n", "\n    "))
	case r.Config.Found:
		fmt.Fprintf(w, "  [OK] %s: loaded\n", r.Config.Name)
	default:
		fmt.Fprintf(w, "  [OK] %s: not found (defaults apply)\n", r.Config.Name)
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d (default workers: %d)\n", r.Env.GoMaxProcs, r.Env.Workers)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
