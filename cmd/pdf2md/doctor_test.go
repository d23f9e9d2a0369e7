package main

// Notes:
// - Tests use a black-box approach through runDoctorCmd() output.
// - Container, CI and config detection tests modify environment variables and
//   cannot use t.Parallel().

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// runDoctorJSON runs the doctor command and decodes its JSON output.
func runDoctorJSON(t *testing.T) (doctorResult, int) {
	t.Helper()

	env, stdout, _ := newTestEnv()
	code := runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, stdout.String())
	}
	return result, code
}

// clearDetectionEnv unsets container and CI signals for the test.
func clearDetectionEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"PDF2MD_CONTAINER", "container", "KUBERNETES_SERVICE_HOST",
		"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI",
		"PDF2MD_CONFIG",
	} {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - Verifies JSON output format and structure
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	result, code := runDoctorJSON(t)

	validStatuses := map[string]bool{"ready": true, "warnings": true, "errors": true}
	if !validStatuses[result.Status] {
		t.Errorf("Invalid status %q, expected ready/warnings/errors", result.Status)
	}
	if result.Status == "errors" && code != ExitGeneral {
		t.Errorf("exit code = %d for errors status, want %d", code, ExitGeneral)
	}
	if result.Status != "errors" && code != ExitSuccess {
		t.Errorf("exit code = %d for %q status, want %d", code, result.Status, ExitSuccess)
	}

	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}
	if result.Env.GoMaxProcs < 1 || result.Env.Workers < 1 {
		t.Errorf("GoMaxProcs = %d, Workers = %d, want positive", result.Env.GoMaxProcs, result.Env.Workers)
	}
}

func TestRunDoctorCmd_Extraction(t *testing.T) {
	t.Parallel()

	result, _ := runDoctorJSON(t)

	if !result.Extraction.OK {
		t.Errorf("extraction failed: %v", result.Errors)
	}
	if result.Extraction.Markdown != sampleMarkdown {
		t.Errorf("Markdown = %q, want %q", result.Extraction.Markdown, sampleMarkdown)
	}
	if !result.System.TempWritable {
		t.Error("Temp directory should be writable in normal conditions")
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_HumanOutput - Verifies human-readable output format
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv()
	runDoctorCmd(nil, env)

	output := stdout.String()
	for _, section := range []string{"pdf2md doctor", "Extraction", "Config", "Environment", "System", "Status:"} {
		if !strings.Contains(output, section) {
			t.Errorf("Output should contain section %q", section)
		}
	}
	if !strings.Contains(output, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Output should contain platform %s/%s", runtime.GOOS, runtime.GOARCH)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_ContainerDetection - Verifies container environment detection
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_ContainerDetection(t *testing.T) {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		t.Skip("/.dockerenv takes priority over environment signals")
	}

	tests := []struct {
		name     string
		envVar   string
		envVal   string
		wantHint string
	}{
		{"explicit override", "PDF2MD_CONTAINER", "1", "PDF2MD_CONTAINER=1"},
		{"kubernetes", "KUBERNETES_SERVICE_HOST", "10.0.0.1", "KUBERNETES_SERVICE_HOST"},
		{"podman", "container", "podman", "container=podman"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearDetectionEnv(t)
			t.Setenv(tt.envVar, tt.envVal)

			result, _ := runDoctorJSON(t)
			if !result.Env.Container {
				t.Error("Container = false, want true")
			}
			if result.Env.ContainerHint != tt.wantHint {
				t.Errorf("ContainerHint = %q, want %q", result.Env.ContainerHint, tt.wantHint)
			}
		})
	}
}

func TestRunDoctorCmd_ContainerPriority(t *testing.T) {
	clearDetectionEnv(t)
	t.Setenv("PDF2MD_CONTAINER", "1")
	t.Setenv("KUBERNETES_SERVICE_HOST", "10.0.0.1")

	result, _ := runDoctorJSON(t)
	if result.Env.ContainerHint != "PDF2MD_CONTAINER=1" {
		t.Errorf("PDF2MD_CONTAINER should have priority, got hint %q", result.Env.ContainerHint)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_CIDetection - Verifies CI environment detection
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_CIDetection(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		envVal string
	}{
		{"CI generic", "CI", "true"},
		{"GitHub Actions", "GITHUB_ACTIONS", "true"},
		{"GitLab CI", "GITLAB_CI", "true"},
		{"Jenkins", "JENKINS_URL", "http://jenkins.local"},
		{"CircleCI", "CIRCLECI", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearDetectionEnv(t)
			t.Setenv(tt.envVar, tt.envVal)

			result, _ := runDoctorJSON(t)
			if !result.Env.CI {
				t.Errorf("CI = false with %s set", tt.envVar)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_Config - Config lookup and unknown variables
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_Config(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(valid, []byte("output:\n  html: true\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("output:\n  colour: red\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name       string
		config     string
		wantFound  bool
		wantErrors bool
	}{
		{"valid config", valid, true, false},
		{"invalid config", invalid, true, true},
		{"missing explicit config", filepath.Join(dir, "missing.yaml"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearDetectionEnv(t)
			t.Setenv("PDF2MD_CONFIG", tt.config)

			result, code := runDoctorJSON(t)
			if result.Config.Found != tt.wantFound {
				t.Errorf("Config.Found = %v, want %v", result.Config.Found, tt.wantFound)
			}
			if (len(result.Errors) > 0) != tt.wantErrors {
				t.Errorf("Errors = %v, wantErrors %v", result.Errors, tt.wantErrors)
			}
			if tt.wantErrors && code != ExitGeneral {
				t.Errorf("exit code = %d, want %d", code, ExitGeneral)
			}
		})
	}
}

func TestRunDoctorCmd_UnknownEnvVar(t *testing.T) {
	clearDetectionEnv(t)
	t.Setenv("PDF2MD_WORKRS", "2")

	result, code := runDoctorJSON(t)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "PDF2MD_WORKRS") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want one naming PDF2MD_WORKRS", result.Warnings)
	}
	if result.Status == "ready" {
		t.Error("Status should not be ready when warnings are present")
	}
	if result.Status == "warnings" && code != ExitSuccess {
		t.Errorf("exit code = %d, want %d for warnings", code, ExitSuccess)
	}
}
