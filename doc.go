// Package cvsnap records resume snapshots: it checks out a tagged version of a
// resume repository, renders it to a PDF stamped with a unique identifier, and
// appends a matching entry to a JSON ledger. The identifier links the PDF to
// its ledger entry, so any printed copy can be traced back to the exact source
// revision and the note recorded at generation time.
//
// # Quick Start
//
// Create a service bound to a ledger file, take a snapshot, and close when done:
//
//	svc := cvsnap.New(cvsnap.WithLedgerPath("ledger.json"))
//	defer svc.Close()
//
//	result, err := svc.Snapshot(ctx, cvsnap.Input{
//	    RepoPath: "/path/to/resume-repo",
//	    Ref:      "v2.3",
//	    Note:     "sent to Acme Corp",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Entry.ID, result.PDFPath)
//
// # Snapshot Pipeline
//
// A snapshot runs these stages in order:
//
//  1. Repository inspection via git (clean tree, checkout ref, resolve HEAD)
//  2. Markdown to HTML conversion (pandoc, or the pure-Go goldmark fallback)
//  3. Stamp injection (style.css {{ref-id}} placeholder, inlined as <style>)
//  4. PDF rendering via headless Chrome (go-rod), identifier in the footer
//  5. Ledger append (JSON array, order-preserving)
//
// There is no retry or rollback: if the ledger append fails after the PDF was
// written, the PDF stays on disk without a matching entry. The ledger assumes
// a single writer; concurrent invocations against the same file race.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package cvsnap
