package cvsnap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInjectCSS(t *testing.T) {
	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "empty css returns html unchanged",
			html: "<html><head></head><body></body></html>",
			css:  "",
			want: "<html><head></head><body></body></html>",
		},
		{
			name: "injects before closing head",
			html: "<html><head></head><body></body></html>",
			css:  "body { margin: 0; }",
			want: "<html><head><style>body { margin: 0; }</style></head><body></body></html>",
		},
		{
			name: "injects after body when no head",
			html: "<html><body><p>hi</p></body></html>",
			css:  "p { color: red; }",
			want: "<html><body><style>p { color: red; }</style><p>hi</p></body></html>",
		},
		{
			name: "prepends when neither head nor body",
			html: "<p>fragment</p>",
			css:  "p {}",
			want: "<style>p {}</style><p>fragment</p>",
		},
		{
			name: "sanitizes closing tags in css",
			html: "<html><head></head></html>",
			css:  "/* </style><script>alert(1)</script> */",
			want: `<html><head><style>/* <\/style><script>alert(1)<\/script> */</style></head></html>`,
		},
	}

	injector := &cssInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.want {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestInjectCSS_CancelledContext(t *testing.T) {
	injector := &cssInjection{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head></html>"
	got := injector.InjectCSS(ctx, html, "body {}")
	if got != html {
		t.Error("expected html unchanged on cancelled context")
	}
}

func TestStampCSS(t *testing.T) {
	tests := []struct {
		name    string
		css     string
		shortID string
		want    string
	}{
		{
			name:    "replaces placeholder",
			css:     `.stamp::after { content: "{{ref-id}}"; }`,
			shortID: "426614174000",
			want:    `.stamp::after { content: "426614174000"; }`,
		},
		{
			name:    "replaces every occurrence",
			css:     "/* {{ref-id}} */ .a { content: \"{{ref-id}}\"; }",
			shortID: "x",
			want:    "/* x */ .a { content: \"x\"; }",
		},
		{
			name:    "no placeholder passes through",
			css:     "body { margin: 0; }",
			shortID: "x",
			want:    "body { margin: 0; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StampCSS(tt.css, tt.shortID); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadStampCSS(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		got, err := loadStampCSS(filepath.Join(t.TempDir(), "style.css"), "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty css, got %q", got)
		}
	})

	t.Run("existing file is stamped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "style.css")
		css := `.footer { content: "{{ref-id}}"; }`
		if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
			t.Fatalf("writing stylesheet: %v", err)
		}

		got, err := loadStampCSS(path, "deadbeef")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "deadbeef") {
			t.Errorf("expected stamped css, got %q", got)
		}
		if strings.Contains(got, StampPlaceholder) {
			t.Error("placeholder survived stamping")
		}
	})
}
