// Package remote fetches a repository to a local path before analysis.
// Fetch failures are non-fatal: the pipeline scans the destination
// regardless, which may then yield zero files.
package remote

import (
	"context"
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Source represents a remote repository to analyze.
type Source struct {
	URL string // normalized git URL
	Ref string // branch, tag, or SHA (empty = default branch)
}

// Parse detects if a path is a remote reference.
// Returns nil if path exists on the filesystem (local path takes
// precedence) or does not look like a remote.
func Parse(path string) *Source {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	ref := ""
	if idx := strings.LastIndex(path, "@"); idx != -1 {
		ref = path[idx+1:]
		path = path[:idx]
	}

	if strings.Contains(path, "://") || strings.HasSuffix(path, ".git") {
		return &Source{URL: path, Ref: ref}
	}
	if isGitHubShorthand(path) {
		return &Source{URL: "https://github.com/" + path, Ref: ref}
	}
	return nil
}

// RepoName returns the repository name component of the source URL,
// used as the default clone destination.
func (s *Source) RepoName() string {
	name := strings.TrimSuffix(s.URL, ".git")
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}
	if name == "" {
		return "repo"
	}
	return name
}

// Clone clones the source into dest and checks out the requested ref,
// if any. Errors cover network, auth, and dest-already-exists; callers
// treat all of them as non-fatal.
func Clone(ctx context.Context, src *Source, dest string) error {
	repo, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:      src.URL,
		Progress: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("clone %s: %w", src.URL, err)
	}

	if src.Ref == "" {
		return nil
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(src.Ref))
	if err != nil {
		return fmt.Errorf("resolve ref %s: %w", src.Ref, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
		return fmt.Errorf("checkout %s: %w", src.Ref, err)
	}
	return nil
}

// isGitHubShorthand returns true if path matches the owner/repo pattern.
func isGitHubShorthand(path string) bool {
	slashIdx := strings.Index(path, "/")
	if slashIdx == -1 {
		return false
	}
	if strings.Count(path, "/") != 1 {
		return false
	}
	// Dots before the slash would indicate a domain, not an owner.
	if strings.Contains(path[:slashIdx], ".") {
		return false
	}
	return slashIdx > 0 && slashIdx < len(path)-1
}
