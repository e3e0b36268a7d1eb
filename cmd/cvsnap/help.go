package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvsnap <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  snapshot   Record a resume snapshot and render the stamped PDF")
	fmt.Fprintln(w, "  doctor     Check git, pandoc, and Chrome availability")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cvsnap help <command>' for details on a specific command.")
}

// printSnapshotUsage prints usage for the snapshot command.
func printSnapshotUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvsnap snapshot --repo <path> --ref <tag> --note <text> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Record a resume snapshot: check out the ref, render a PDF stamped")
	fmt.Fprintln(w, "with a unique identifier, and append an entry to the JSON ledger.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Source:")
	fmt.Fprintln(w, "      --repo <path>         Path to the resume repository (required)")
	fmt.Fprintln(w, "      --ref <tag>           Git tag or commit to snapshot (required)")
	fmt.Fprintln(w, "      --note <text>         Note recorded in the ledger (required)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --ledger <path>       Ledger file (default: ledger.json)")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --converter <s>       HTML converter: pandoc (default), goldmark")
	fmt.Fprintln(w, "      --style <path>        Stylesheet (default: <repo>/style.css)")
	fmt.Fprintln(w, "      --no-stamp-css        Skip the stylesheet stamp")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stamp:")
	fmt.Fprintln(w, "      --stamp-position <s>  Position: left, center, right")
	fmt.Fprintln(w, "      --stamp-ref           Include the ref in the footer stamp")
	fmt.Fprintln(w, "      --stamp-date          Include the date in the footer stamp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvsnap doctor [--json] [--ledger <path>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that git, pandoc, and Chrome/Chromium are available, the temp")
	fmt.Fprintln(w, "directory is writable, and the ledger file parses.")
}
