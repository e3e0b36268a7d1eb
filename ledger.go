package cvsnap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one recorded resume snapshot. Entries are written once and never
// updated in place; the ledger is an append-only ordered list.
type Entry struct {
	ID        string    `json:"id"`
	Repo      string    `json:"repo"`
	Ref       string    `json:"ref"`
	Commit    string    `json:"commit"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// File permission constants for the ledger.
const (
	ledgerFilePerm = 0o644
	ledgerDirPerm  = 0o750
)

// ledgerStore abstracts ledger persistence for testability.
type ledgerStore interface {
	Append(entry Entry) error
	Path() string
}

// Ledger persists entries as a JSON array in a single file. The path is an
// explicit constructor argument, not ambient state. A single writer is
// assumed: two concurrent invocations against the same file race on the
// read-modify-write and the last writer wins.
type Ledger struct {
	path string
}

// Compile-time interface implementation check.
var _ ledgerStore = (*Ledger)(nil)

// NewLedger creates a Ledger bound to the given file path.
// The file is not touched until the first Load or Append.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the ledger file path.
func (l *Ledger) Path() string {
	return l.path
}

// Load reads all entries from the ledger file in recorded order.
// A missing file yields an empty list; content that is not a JSON array of
// entries fails with ErrLedgerCorrupt and the file is left untouched.
func (l *Ledger) Load() ([]Entry, error) {
	data, err := os.ReadFile(l.path) // #nosec G304 -- ledger path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading ledger %s: %w", l.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLedgerCorrupt, l.path, err)
	}
	// A JSON "null" unmarshals into a nil slice without error, but it is
	// not an entry list; appending over it would discard the distinction.
	if entries == nil {
		return nil, fmt.Errorf("%w: %s: null is not an entry list", ErrLedgerCorrupt, l.path)
	}
	return entries, nil
}

// Append adds an entry after all existing ones and writes the whole list
// back. Prior entries are preserved byte-for-byte up to re-serialization.
// There is no partial-write guarantee beyond what os.WriteFile provides.
func (l *Ledger) Append(entry Entry) error {
	entries, err := l.Load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, ledgerDirPerm); err != nil {
			return fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	if err := os.WriteFile(l.path, data, ledgerFilePerm); err != nil {
		return fmt.Errorf("writing ledger %s: %w", l.path, err)
	}
	return nil
}
