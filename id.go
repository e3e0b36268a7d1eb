package cvsnap

import (
	"strings"

	"github.com/google/uuid"
)

// NewSnapshotID returns a unique identifier for one snapshot. A random UUID
// gives negligible collision probability across invocations without needing
// any coordination with the ledger.
func NewSnapshotID() string {
	return uuid.NewString()
}

// ShortID returns the last hyphen-separated segment of a snapshot ID.
// This is the text stamped into the PDF; the full ID lives in the ledger.
func ShortID(id string) string {
	if i := strings.LastIndex(id, "-"); i >= 0 {
		return id[i+1:]
	}
	return id
}
