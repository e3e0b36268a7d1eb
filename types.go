package cvsnap

import (
	"fmt"
	"strings"
	"time"
)

// Converter backend names.
const (
	ConverterPandoc   = "pandoc"
	ConverterGoldmark = "goldmark"
)

// Well-known file names inside the resume repository.
const (
	ResumeFileName = "resume.md"
	StyleFileName  = "style.css"
)

// StampPlaceholder is the token in style.css replaced with the short
// snapshot ID, matching whatever the stylesheet renders it into
// (header badge, margin note, footer).
const StampPlaceholder = "{{ref-id}}"

// Input contains snapshot parameters.
type Input struct {
	RepoPath   string // Path to the resume repository (required)
	Ref        string // Git tag or commit to check out (required)
	Note       string // Free-form note recorded in the ledger (required)
	OutputPath string // PDF file or directory (optional, "" = repo's parent dir)
	Converter  string // "pandoc" (default) or "goldmark"
	StylePath  string // Override for <repo>/style.css (optional)
	NoStampCSS bool   // Skip the stylesheet stamp; footer stamp still applies
	Stamp      *Stamp // Footer stamp config (optional, nil = defaults)
}

// Stamp configures how the snapshot identifier appears in the PDF footer.
// The short ID is always printed; Ref and Date are opt-in extras.
type Stamp struct {
	Position string // "left", "center", "right" (default: "right")
	ShowRef  bool
	ShowDate bool
}

// Validate checks that stamp settings are valid.
// Returns nil if s is nil (nil means defaults).
func (s *Stamp) Validate() error {
	if s == nil {
		return nil
	}
	switch strings.ToLower(s.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidStampPosition, s.Position)
	}
}

// Result holds the outcome of a successful snapshot.
type Result struct {
	Entry   Entry  // The ledger entry that was recorded
	PDFPath string // Where the stamped PDF was written
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	ledgerPath string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// DefaultLedgerPath is used when no ledger path is specified.
const DefaultLedgerPath = "ledger.json"

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cvsnap: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithLedgerPath binds the service to a ledger file. The path is explicit
// rather than ambient so two services never share state by accident.
func WithLedgerPath(path string) Option {
	if path == "" {
		panic("cvsnap: WithLedgerPath path must not be empty")
	}
	return func(s *Service) {
		s.cfg.ledgerPath = path
	}
}
