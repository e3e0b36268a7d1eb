package cvsnap

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// gitClient abstracts the git operations a snapshot needs.
type gitClient interface {
	EnsureCleanTree(ctx context.Context, repo string) error
	Checkout(ctx context.Context, repo, ref string) error
	Head(ctx context.Context, repo string) (string, error)
}

// execGit implements gitClient by invoking the git CLI through a CommandRunner.
type execGit struct {
	runner CommandRunner
}

// newExecGit creates an execGit backed by the given runner.
func newExecGit(runner CommandRunner) *execGit {
	return &execGit{runner: runner}
}

// EnsureCleanTree fails if the repository has uncommitted changes.
// A snapshot must record exactly what the ref contains, nothing more.
func (g *execGit) EnsureCleanTree(ctx context.Context, repo string) error {
	out, stderr, err := g.runner.Run(ctx, repo, "git", "status", "--porcelain")
	if err != nil {
		return wrapGitError(err, stderr)
	}
	if strings.TrimSpace(out) != "" {
		return fmt.Errorf("%w: commit or stash changes in %s", ErrDirtyWorkingTree, repo)
	}
	return nil
}

// Checkout switches the repository to the given ref.
func (g *execGit) Checkout(ctx context.Context, repo, ref string) error {
	_, stderr, err := g.runner.Run(ctx, repo, "git", "checkout", ref)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %v", ErrGitNotFound, err)
		}
		return fmt.Errorf("%w: %q: %s", ErrRefResolve, ref, strings.TrimSpace(stderr))
	}
	return nil
}

// Head returns the commit hash the repository is checked out at.
func (g *execGit) Head(ctx context.Context, repo string) (string, error) {
	out, stderr, err := g.runner.Run(ctx, repo, "git", "rev-parse", "HEAD")
	if err != nil {
		return "", wrapGitError(err, stderr)
	}
	return strings.TrimSpace(out), nil
}

// wrapGitError distinguishes a missing git binary from a failed git command.
func wrapGitError(err error, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrGitNotFound, err)
	}
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("git: %s: %w", msg, err)
	}
	return fmt.Errorf("git: %w", err)
}
