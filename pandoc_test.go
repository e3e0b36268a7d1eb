package cvsnap

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestPandocConverter_ToHTML(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		mock       *MockRunner
		wantErr    error
		wantOutput string
	}{
		{
			name:    "empty content returns ErrConverterFailed",
			content: "",
			mock:    &MockRunner{},
			wantErr: ErrConverterFailed,
		},
		{
			name:       "pandoc succeeds returns HTML",
			content:    "# Resume",
			mock:       &MockRunner{Stdout: "<html><body><h1>Resume</h1></body></html>"},
			wantOutput: "<html><body><h1>Resume</h1></body></html>",
		},
		{
			name:    "missing pandoc returns ErrConverterNotFound",
			content: "# Resume",
			mock:    &MockRunner{Err: exec.ErrNotFound},
			wantErr: ErrConverterNotFound,
		},
		{
			name:    "pandoc failure returns ErrConverterFailed with stderr",
			content: "# Resume",
			mock:    &MockRunner{Stderr: "pandoc: parse error", Err: errors.New("exit status 64")},
			wantErr: ErrConverterFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newPandocConverter(tt.mock)
			got, err := c.ToHTML(context.Background(), tt.content)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantOutput {
				t.Errorf("expected output %q, got %q", tt.wantOutput, got)
			}
		})
	}
}

func TestPandocConverter_CommandLine(t *testing.T) {
	mock := &MockRunner{Stdout: "<html></html>"}
	c := newPandocConverter(mock)

	if _, err := c.ToHTML(context.Background(), "# Resume"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// pandoc <tmpfile> -f markdown -t html5 --standalone
	args := mock.CalledWith
	if len(args) != 7 {
		t.Fatalf("expected 7 args, got %d: %v", len(args), args)
	}
	if args[0] != "pandoc" {
		t.Errorf("expected pandoc, got %q", args[0])
	}
	if !strings.HasSuffix(args[1], ".md") {
		t.Errorf("expected temp .md file, got %q", args[1])
	}
	want := []string{"-f", "markdown", "-t", "html5", "--standalone"}
	for i, w := range want {
		if args[i+2] != w {
			t.Errorf("arg[%d]: expected %q, got %q", i+2, w, args[i+2])
		}
	}
}
