package cvsnap

import (
	"strings"
	"testing"
)

func TestNewSnapshotID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewSnapshotID()
		if id == "" {
			t.Fatal("expected non-empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewSnapshotID_Format(t *testing.T) {
	id := NewSnapshotID()

	// UUIDs have 5 hyphen-separated groups
	parts := strings.Split(id, "-")
	if len(parts) != 5 {
		t.Errorf("expected 5 groups, got %d: %s", len(parts), id)
	}
	if len(id) != 36 {
		t.Errorf("expected 36 chars, got %d: %s", len(id), id)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "uuid returns last segment",
			id:   "123e4567-e89b-12d3-a456-426614174000",
			want: "426614174000",
		},
		{
			name: "single hyphen",
			id:   "abc-def",
			want: "def",
		},
		{
			name: "no hyphen returns whole id",
			id:   "abcdef",
			want: "abcdef",
		},
		{
			name: "empty id",
			id:   "",
			want: "",
		},
		{
			name: "trailing hyphen returns empty segment",
			id:   "abc-",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortID(tt.id); got != tt.want {
				t.Errorf("ShortID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
