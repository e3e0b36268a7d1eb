package cvsnap

import (
	"strings"
	"testing"
)

func TestBuildStampFooter(t *testing.T) {
	tests := []struct {
		name     string
		data     *stampData
		want     string
		contains []string
	}{
		{
			name: "nil data yields empty footer",
			data: nil,
			want: "<span></span>",
		},
		{
			name: "empty short id yields empty footer",
			data: &stampData{},
			want: "<span></span>",
		},
		{
			name:     "short id only, right-aligned by default",
			data:     &stampData{ShortID: "426614174000"},
			contains: []string{"426614174000", "text-align: right"},
		},
		{
			name:     "ref joined with separator",
			data:     &stampData{ShortID: "abc", Ref: "v2.1"},
			contains: []string{"abc - v2.1"},
		},
		{
			name:     "ref and date in order",
			data:     &stampData{ShortID: "abc", Ref: "v2.1", Date: "2026-08-23"},
			contains: []string{"abc - v2.1 - 2026-08-23"},
		},
		{
			name:     "left position",
			data:     &stampData{ShortID: "abc", Position: "left"},
			contains: []string{"text-align: left"},
		},
		{
			name:     "center position",
			data:     &stampData{ShortID: "abc", Position: "center"},
			contains: []string{"text-align: center"},
		},
		{
			name:     "unknown position falls back to right",
			data:     &stampData{ShortID: "abc", Position: "bottom"},
			contains: []string{"text-align: right"},
		},
		{
			name:     "html in ref is escaped",
			data:     &stampData{ShortID: "abc", Ref: "<script>"},
			contains: []string{"&lt;script&gt;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildStampFooter(tt.data)
			if tt.want != "" && got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("footer missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestBuildPDFOptions(t *testing.T) {
	opts := buildPDFOptions(&pdfOptions{Stamp: &stampData{ShortID: "abc"}})

	if !opts.DisplayHeaderFooter {
		t.Error("expected DisplayHeaderFooter to be set")
	}
	if opts.HeaderTemplate != "<span></span>" {
		t.Errorf("expected empty header, got %q", opts.HeaderTemplate)
	}
	if !strings.Contains(opts.FooterTemplate, "abc") {
		t.Errorf("expected stamp in footer, got %q", opts.FooterTemplate)
	}
	if *opts.PaperWidth != paperWidthInches || *opts.PaperHeight != paperHeightInches {
		t.Errorf("expected US Letter, got %vx%v", *opts.PaperWidth, *opts.PaperHeight)
	}
	if *opts.MarginBottom != marginBottomStamp {
		t.Errorf("expected bottom margin %v for the stamp, got %v", marginBottomStamp, *opts.MarginBottom)
	}
	if !opts.PrintBackground {
		t.Error("expected PrintBackground to be set")
	}
}

func TestBuildPDFOptions_NilOpts(t *testing.T) {
	opts := buildPDFOptions(nil)

	// Footer machinery stays on even without a stamp; the template is empty.
	if !opts.DisplayHeaderFooter {
		t.Error("expected DisplayHeaderFooter to be set")
	}
	if opts.FooterTemplate != "<span></span>" {
		t.Errorf("expected empty footer, got %q", opts.FooterTemplate)
	}
}
