package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	cvsnap "github.com/alnah/go-cvsnap"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Git      toolInfo   `json:"git"`
	Pandoc   toolInfo   `json:"pandoc"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for a CLI tool.
type toolInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool   `json:"temp_writable"`
	LedgerPath   string `json:"ledger_path"`
	LedgerOK     bool   `json:"ledger_ok"`
	LedgerCount  int    `json:"ledger_entries"`
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json   bool
	ledger string
}

// parseDoctorFlags parses doctor command flags. An unset --ledger falls back
// to CVSNAP_LEDGER, then the default path.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "machine-readable output")
	fs.StringVar(&f.ledger, "ledger", "", "ledger file path (default: ledger.json)")

	fs.Usage = func() { printDoctorUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if f.ledger == "" {
		f.ledger = os.Getenv("CVSNAP_LEDGER")
	}
	if f.ledger == "" {
		f.ledger = cvsnap.DefaultLedgerPath
	}
	return f, nil
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args)
	if err != nil {
		return ExitUsage
	}

	result := runDoctor(flags.ledger)

	if flags.json {
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
func runDoctor(ledgerPath string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	result.Git = checkTool("git", "--version")
	if !result.Git.Found {
		result.Errors = append(result.Errors,
			"git not found. Install git; snapshots check out refs from the resume repository")
	}

	result.Pandoc = checkTool("pandoc", "--version")
	if !result.Pandoc.Found {
		result.Warnings = append(result.Warnings,
			"pandoc not found. Install pandoc or use --converter goldmark")
	}

	checkChrome(result)
	checkEnvironment(result)
	checkSystem(result, ledgerPath)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkTool detects a CLI tool on PATH and grabs its version line.
func checkTool(name, versionFlag string) toolInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return toolInfo{}
	}

	info := toolInfo{Found: true, Path: path}
	out, err := exec.Command(path, versionFlag).Output()
	if err == nil {
		if line, _, ok := strings.Cut(strings.TrimSpace(string(out)), "\n"); ok {
			info.Version = line
		} else {
			info.Version = strings.TrimSpace(string(out))
		}
	}
	return info
}

// checkChrome detects Chrome/Chromium installation.
func checkChrome(result *doctorResult) {
	chromePath := result.Env.BrowserBin

	if chromePath == "" {
		// Use rod's launcher to locate Chrome
		var found bool
		chromePath, found = launcher.LookPath()
		if !found {
			result.Errors = append(result.Errors,
				"Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}

	// Verify it exists
	if _, err := os.Stat(chromePath); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	// Get version by running chrome --version
	out, err := exec.Command(chromePath, "--version").Output()
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	// Sandbox status: disabled if ROD_NO_SANDBOX=1
	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment detects CI environments.
func checkEnvironment(result *doctorResult) {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if result.Env.CI && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// checkSystem verifies system requirements and the ledger file.
func checkSystem(result *doctorResult, ledgerPath string) {
	// Check temp directory is writable
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "cvsnap-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}

	// Check the ledger parses (absent is fine, it's created on first snapshot)
	result.System.LedgerPath = ledgerPath
	entries, err := cvsnap.NewLedger(ledgerPath).Load()
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Ledger not readable: %v", err))
	} else {
		result.System.LedgerOK = true
		result.System.LedgerCount = len(entries)
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "cvsnap doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tools")
	printToolLine(w, "git", r.Git)
	printToolLine(w, "pandoc", r.Pandoc)
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] chrome: %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] chrome version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] chrome sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] chrome sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] chrome: not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	if r.System.LedgerOK {
		fmt.Fprintf(w, "  [OK] Ledger: %s (%d entries)\n", r.System.LedgerPath, r.System.LedgerCount)
	} else {
		fmt.Fprintf(w, "  [ERROR] Ledger: %s not readable\n", r.System.LedgerPath)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to snapshot")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printToolLine prints one tool detection line.
func printToolLine(w io.Writer, name string, t toolInfo) {
	if t.Found {
		if t.Version != "" {
			fmt.Fprintf(w, "  [OK] %s: %s (%s)\n", name, t.Path, t.Version)
		} else {
			fmt.Fprintf(w, "  [OK] %s: %s\n", name, t.Path)
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] %s: not found\n", name)
	}
}
