package remote

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestParse_LocalPath(t *testing.T) {
	dir := t.TempDir()

	if src := Parse(dir); src != nil {
		t.Errorf("expected nil for existing local path, got %+v", src)
	}
}

func TestParse_GitHubShorthand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantURL string
		wantRef string
	}{
		{
			name:    "simple owner/repo",
			input:   "PyGithub/PyGithub",
			wantURL: "https://github.com/PyGithub/PyGithub",
			wantRef: "",
		},
		{
			name:    "with ref suffix",
			input:   "owner/repo@v1.2.0",
			wantURL: "https://github.com/owner/repo",
			wantRef: "v1.2.0",
		},
		{
			name:    "with branch ref",
			input:   "owner/repo@feature-branch",
			wantURL: "https://github.com/owner/repo",
			wantRef: "feature-branch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Parse(tt.input)
			if src == nil {
				t.Fatal("expected a remote source")
			}
			if src.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", src.URL, tt.wantURL)
			}
			if src.Ref != tt.wantRef {
				t.Errorf("Ref = %q, want %q", src.Ref, tt.wantRef)
			}
		})
	}
}

func TestParse_FullURL(t *testing.T) {
	src := Parse("https://example.com/group/project.git")
	if src == nil {
		t.Fatal("expected a remote source for a full URL")
	}
	if src.URL != "https://example.com/group/project.git" {
		t.Errorf("URL = %q", src.URL)
	}
}

func TestParse_NotRemote(t *testing.T) {
	tests := []string{
		"plainname",
		"a/b/c",
		"example.com/repo",
		"/nonexistent/deep/path",
	}
	for _, input := range tests {
		if src := Parse(input); src != nil {
			t.Errorf("Parse(%q) = %+v, want nil", input, src)
		}
	}
}

func TestRepoName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/PyGithub/PyGithub", "PyGithub"},
		{"https://example.com/group/project.git", "project"},
		{"", "repo"},
	}
	for _, tt := range tests {
		src := &Source{URL: tt.url}
		if got := src.RepoName(); got != tt.want {
			t.Errorf("RepoName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestClone_LocalRepository(t *testing.T) {
	// Build a small local repository to clone from.
	src := t.TempDir()
	repo, err := git.PlainInit(src, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "main.py"), []byte("x = 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("main.py"); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "clone")
	if err := Clone(context.Background(), &Source{URL: src}, dest); err != nil {
		t.Fatalf("Clone() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "main.py")); err != nil {
		t.Errorf("cloned file missing: %v", err)
	}
}

func TestClone_Failure(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "clone")
	err := Clone(context.Background(), &Source{URL: filepath.Join(t.TempDir(), "no-such-repo")}, dest)
	if err == nil {
		t.Error("Clone() should report an error for a missing repository")
	}
}
