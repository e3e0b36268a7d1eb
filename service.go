package cvsnap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File permission constants for snapshot output.
const (
	outputDirPerm = 0o750 // rwxr-x---: owner full, group read+execute
	pdfFilePerm   = 0o644 // rw-r--r--: PDFs are meant to be shared
)

// Service orchestrates the snapshot pipeline: git inspection, rendering,
// stamping, and ledger append.
type Service struct {
	cfg      serviceConfig
	git      gitClient
	pandoc   htmlConverter
	goldmark htmlConverter
	injector cssInjector
	pdf      pdfConverter
	ledger   ledgerStore
	newID    func() string
	now      func() time.Time
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithLedgerPath).
func New(opts ...Option) *Service {
	runner := &ExecRunner{}
	s := &Service{
		cfg:      serviceConfig{timeout: defaultTimeout, ledgerPath: DefaultLedgerPath},
		git:      newExecGit(runner),
		pandoc:   newPandocConverter(runner),
		goldmark: newGoldmarkConverter(),
		injector: &cssInjection{},
		newID:    NewSnapshotID,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter and ledger if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}
	if s.ledger == nil {
		s.ledger = NewLedger(s.cfg.ledgerPath)
	}

	return s
}

// Snapshot runs the full pipeline: checks out the ref, renders the stamped
// PDF, writes it to disk, and appends the matching ledger entry.
// The context is used for cancellation and timeout.
//
// Stages run in order with no rollback. A ledger failure after the PDF was
// written leaves the PDF on disk unrecorded; the error is surfaced but the
// file is not removed.
func (s *Service) Snapshot(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	repo, err := filepath.Abs(input.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("resolving repository path: %w", err)
	}

	// Pin the repository to the requested ref
	if err := s.git.EnsureCleanTree(ctx, repo); err != nil {
		return nil, err
	}
	if err := s.git.Checkout(ctx, repo, input.Ref); err != nil {
		return nil, err
	}
	commit, err := s.git.Head(ctx, repo)
	if err != nil {
		return nil, err
	}

	// resume.md must exist at the checked-out ref, not just at HEAD
	mdContent, err := os.ReadFile(filepath.Join(repo, ResumeFileName)) // #nosec G304 -- path is inside the user's repo
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, repo)
		}
		return nil, fmt.Errorf("reading %s: %w", ResumeFileName, err)
	}

	id := s.newID()
	shortID := ShortID(id)

	conv, err := s.converterFor(input.Converter)
	if err != nil {
		return nil, err
	}
	htmlContent, err := conv.ToHTML(ctx, string(mdContent))
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	cssContent, err := s.resolveStampCSS(input, repo, shortID)
	if err != nil {
		return nil, err
	}
	htmlContent = s.injector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	createdAt := s.now().UTC()
	pdfBytes, err := s.pdf.ToPDF(ctx, htmlContent, &pdfOptions{
		Stamp: buildStampData(input.Stamp, shortID, input.Ref, createdAt),
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	pdfPath := resolvePDFPath(input.OutputPath, repo, shortID)
	if err := writePDF(pdfPath, pdfBytes); err != nil {
		return nil, err
	}

	entry := Entry{
		ID:        id,
		Repo:      input.RepoPath,
		Ref:       input.Ref,
		Commit:    commit,
		Note:      input.Note,
		CreatedAt: createdAt,
	}
	if err := s.ledger.Append(entry); err != nil {
		// The PDF stays on disk without a matching entry; accepted
		// inconsistency, surfaced rather than rolled back.
		return nil, fmt.Errorf("recording snapshot %s: %w", id, err)
	}

	return &Result{Entry: entry, PDFPath: pdfPath}, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
// Runs before any external tool is invoked.
func (s *Service) validateInput(input Input) error {
	if input.RepoPath == "" {
		return ErrEmptyRepoPath
	}
	info, err := os.Stat(input.RepoPath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRepoNotFound, input.RepoPath)
	}
	if input.Ref == "" {
		return ErrEmptyRef
	}
	if input.Note == "" {
		return ErrEmptyNote
	}
	if _, err := s.converterFor(input.Converter); err != nil {
		return err
	}
	return input.Stamp.Validate()
}

// converterFor selects the HTML converter backend by name.
func (s *Service) converterFor(name string) (htmlConverter, error) {
	switch strings.ToLower(name) {
	case "", ConverterPandoc:
		return s.pandoc, nil
	case ConverterGoldmark:
		return s.goldmark, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be pandoc or goldmark)", ErrInvalidConverter, name)
	}
}

// resolveStampCSS loads and stamps the stylesheet for this snapshot.
// An explicitly requested stylesheet must exist; the repo default may be absent.
func (s *Service) resolveStampCSS(input Input, repo, shortID string) (string, error) {
	if input.NoStampCSS {
		return "", nil
	}

	if input.StylePath != "" {
		content, err := os.ReadFile(input.StylePath) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("reading stylesheet %s: %w", input.StylePath, err)
		}
		return StampCSS(string(content), shortID), nil
	}

	return loadStampCSS(filepath.Join(repo, StyleFileName), shortID)
}

// buildStampData resolves the footer stamp for one snapshot.
func buildStampData(stamp *Stamp, shortID, ref string, createdAt time.Time) *stampData {
	d := &stampData{ShortID: shortID}
	if stamp == nil {
		return d
	}
	d.Position = strings.ToLower(stamp.Position)
	if stamp.ShowRef {
		d.Ref = ref
	}
	if stamp.ShowDate {
		d.Date = createdAt.Format("2006-01-02")
	}
	return d
}

// resolvePDFPath determines where the stamped PDF is written.
// A path ending in .pdf is used as-is; a directory (or "") gets the
// default resume-<shortid>.pdf name. The default lands in the repository's
// parent directory, never inside the repository: an untracked PDF in the
// working tree would fail the clean-tree check on the next snapshot.
func resolvePDFPath(outputPath, repo, shortID string) string {
	name := "resume-" + shortID + ".pdf"
	if outputPath == "" {
		return filepath.Join(filepath.Dir(repo), name)
	}
	if strings.HasSuffix(outputPath, ".pdf") {
		return outputPath
	}
	return filepath.Join(outputPath, name)
}

// writePDF writes the PDF bytes, creating parent directories as needed.
func writePDF(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outputDirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, pdfFilePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
