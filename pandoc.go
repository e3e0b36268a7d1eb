package cvsnap

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/alnah/go-cvsnap/internal/fileutil"
)

// htmlConverter abstracts Markdown to HTML conversion to allow different backends.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// pandocConverter converts Markdown to HTML by invoking the pandoc CLI.
// This is the default backend, matching what the resume stylesheets are
// written against (pandoc's standalone HTML5 skeleton).
type pandocConverter struct {
	runner CommandRunner
}

// newPandocConverter creates a pandocConverter backed by the given runner.
func newPandocConverter(runner CommandRunner) *pandocConverter {
	return &pandocConverter{runner: runner}
}

// ToHTML converts Markdown content to a standalone HTML5 document using pandoc.
// The content is written to a temp file because pandoc's stdin mode disables
// some of its path-relative resource handling.
func (c *pandocConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("%w: empty markdown content", ErrConverterFailed)
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(content, "md")
	if err != nil {
		return "", err
	}
	defer cleanup()

	stdout, stderr, err := c.runner.Run(ctx, "", "pandoc", tmpPath, "-f", "markdown", "-t", "html5", "--standalone")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: pandoc: %v", ErrConverterNotFound, err)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrConverterFailed, stderr, err)
	}

	return stdout, nil
}
