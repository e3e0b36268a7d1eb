package cvsnap

import "errors"

// Sentinel errors for snapshot operations.
var (
	// Input validation errors.
	ErrEmptyRepoPath    = errors.New("repository path cannot be empty")
	ErrRepoNotFound     = errors.New("repository path does not exist")
	ErrEmptyRef         = errors.New("ref cannot be empty")
	ErrEmptyNote        = errors.New("note cannot be empty")
	ErrInvalidConverter = errors.New("invalid converter")
	ErrResumeNotFound   = errors.New("resume.md not found in repository")

	// Git errors.
	ErrGitNotFound      = errors.New("git binary not found")
	ErrDirtyWorkingTree = errors.New("working tree is not clean")
	ErrRefResolve       = errors.New("failed to check out ref")

	// Rendering errors.
	ErrConverterNotFound = errors.New("converter binary not found")
	ErrConverterFailed   = errors.New("document conversion failed")
	ErrHTMLConversion    = errors.New("HTML conversion failed")
	ErrBrowserConnect    = errors.New("failed to connect to browser")
	ErrPageCreate        = errors.New("failed to create browser page")
	ErrPageLoad          = errors.New("failed to load page")
	ErrPDFGeneration     = errors.New("PDF generation failed")
	ErrWritePDF          = errors.New("failed to write PDF file")

	// Stamp validation errors.
	ErrInvalidStampPosition = errors.New("invalid stamp position")

	// Ledger errors.
	ErrLedgerCorrupt = errors.New("ledger file is not a valid JSON entry list")
)
