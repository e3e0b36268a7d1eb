package cvsnap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testEntry(n int) Entry {
	return Entry{
		ID:        fmt.Sprintf("id-%04d", n),
		Repo:      "/home/user/resume",
		Ref:       fmt.Sprintf("v%d.0", n),
		Commit:    fmt.Sprintf("commit%04d", n),
		Note:      fmt.Sprintf("sent to company %d", n),
		CreatedAt: time.Date(2026, 8, 23, 12, 0, n, 0, time.UTC),
	}
}

func TestLedger_LoadMissingFile(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "ledger.json"))

	entries, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(entries))
	}
}

func TestLedger_AppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	l := NewLedger(path)

	if err := l.Append(testEntry(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0] != testEntry(1) {
		t.Errorf("entry mismatch: got %+v", entries[0])
	}
}

func TestLedger_AppendCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.json")
	l := NewLedger(path)

	if err := l.Append(testEntry(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("ledger file not created: %v", err)
	}
}

func TestLedger_AppendPreservesOrder(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "ledger.json"))

	const n = 5
	for i := 1; i <= n; i++ {
		if err := l.Append(testEntry(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != n {
		t.Fatalf("expected %d entries, got %d", n, len(entries))
	}
	for i, e := range entries {
		if want := testEntry(i + 1); e != want {
			t.Errorf("entry[%d]: expected %+v, got %+v", i, want, e)
		}
	}
}

func TestLedger_AppendPreservesPriorEntries(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "ledger.json"))

	for i := 1; i <= 3; i++ {
		if err := l.Append(testEntry(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	before, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.Append(testEntry(4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(after) != len(before)+1 {
		t.Fatalf("expected %d entries, got %d", len(before)+1, len(after))
	}
	for i, e := range before {
		if after[i] != e {
			t.Errorf("entry[%d] changed after append: %+v != %+v", i, after[i], e)
		}
	}
}

func TestLedger_CorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "this is not json"},
		{name: "json object instead of array", content: `{"id": "abc"}`},
		{name: "truncated array", content: `[{"id": "abc"`},
		{name: "null literal", content: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ledger.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing ledger: %v", err)
			}
			l := NewLedger(path)

			if _, err := l.Load(); !errors.Is(err, ErrLedgerCorrupt) {
				t.Errorf("Load: expected ErrLedgerCorrupt, got %v", err)
			}

			// Append must refuse too, and must not overwrite the file
			if err := l.Append(testEntry(1)); !errors.Is(err, ErrLedgerCorrupt) {
				t.Errorf("Append: expected ErrLedgerCorrupt, got %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading ledger: %v", err)
			}
			if string(data) != tt.content {
				t.Error("corrupt ledger was modified")
			}
		})
	}
}

func TestLedger_EmptyArrayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
		t.Fatalf("writing ledger: %v", err)
	}

	entries, err := NewLedger(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(entries))
	}
}

func TestLedger_Path(t *testing.T) {
	l := NewLedger("/tmp/custom.json")
	if l.Path() != "/tmp/custom.json" {
		t.Errorf("expected /tmp/custom.json, got %q", l.Path())
	}
}
