package main

import (
	"errors"
	"os"

	cvsnap "github.com/alnah/go-cvsnap"
	"github.com/alnah/go-cvsnap/internal/config"
)

// Exit codes for cvsnap CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful snapshot
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitTool    = 4 // External tool errors (git, pandoc, Chrome)
	ExitLedger  = 5 // Ledger file corrupt
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Ledger corruption (exit 5)
	if errors.Is(err, cvsnap.ErrLedgerCorrupt) {
		return ExitLedger
	}

	// External tool errors (exit 4)
	if errors.Is(err, cvsnap.ErrGitNotFound) ||
		errors.Is(err, cvsnap.ErrConverterNotFound) ||
		errors.Is(err, cvsnap.ErrConverterFailed) ||
		errors.Is(err, cvsnap.ErrBrowserConnect) ||
		errors.Is(err, cvsnap.ErrPageCreate) ||
		errors.Is(err, cvsnap.ErrPageLoad) ||
		errors.Is(err, cvsnap.ErrPDFGeneration) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, cvsnap.ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, cvsnap.ErrEmptyRepoPath) ||
		errors.Is(err, cvsnap.ErrRepoNotFound) ||
		errors.Is(err, cvsnap.ErrEmptyRef) ||
		errors.Is(err, cvsnap.ErrEmptyNote) ||
		errors.Is(err, cvsnap.ErrInvalidConverter) ||
		errors.Is(err, cvsnap.ErrResumeNotFound) ||
		errors.Is(err, cvsnap.ErrDirtyWorkingTree) ||
		errors.Is(err, cvsnap.ErrRefResolve) ||
		errors.Is(err, cvsnap.ErrInvalidStampPosition) ||
		errors.Is(err, cvsnap.ErrHTMLConversion) {
		return ExitUsage
	}

	return ExitGeneral
}
