package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sourceFlags holds flags naming what to snapshot.
type sourceFlags struct {
	repo string
	ref  string
	note string
}

// renderFlags holds rendering-related flags.
type renderFlags struct {
	converter  string
	style      string
	noStampCSS bool
	timeout    string
}

// stampFlags holds footer stamp flags.
type stampFlags struct {
	position string
	showRef  bool
	showDate bool
}

// snapshotFlags holds all flags for the snapshot command.
type snapshotFlags struct {
	common commonFlags
	source sourceFlags
	render renderFlags
	stamp  stampFlags
	ledger string
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSourceFlags adds source flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVar(&f.repo, "repo", "", "path to the resume repository")
	fs.StringVar(&f.ref, "ref", "", "git tag or commit to snapshot")
	fs.StringVar(&f.note, "note", "", "free-form note recorded in the ledger")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.converter, "converter", "", "HTML converter: pandoc, goldmark")
	fs.StringVar(&f.style, "style", "", "stylesheet path (default: <repo>/style.css)")
	fs.BoolVar(&f.noStampCSS, "no-stamp-css", false, "skip the stylesheet stamp")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
}

// addStampFlags adds footer stamp flags to a FlagSet.
func addStampFlags(fs *flag.FlagSet, f *stampFlags) {
	fs.StringVar(&f.position, "stamp-position", "", "stamp position: left, center, right")
	fs.BoolVar(&f.showRef, "stamp-ref", false, "include the ref in the stamp")
	fs.BoolVar(&f.showDate, "stamp-date", false, "include the date in the stamp")
}

// parseSnapshotFlags parses snapshot command flags.
func parseSnapshotFlags(args []string) (*snapshotFlags, error) {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	f := &snapshotFlags{}

	// I/O flags
	fs.StringVar(&f.ledger, "ledger", "", "ledger file path (default: ledger.json)")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF file or directory")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)
	addRenderFlags(fs, &f.render)
	addStampFlags(fs, &f.stamp)

	fs.Usage = func() { printSnapshotUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
