// Package treesource walks a directory tree and parses matching source
// files into syntax trees, bounded by a hard tree cap.
package treesource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nomen/internal/progress"
	"nomen/pkg/parser"
)

// DefaultMaxTrees is the scan budget: accumulation stops once this many
// trees have been parsed.
const DefaultMaxTrees = 100

// errCapReached unwinds the walk once the tree cap is hit.
var errCapReached = errors.New("tree cap reached")

// Source produces parsed syntax trees for files under a root directory.
type Source struct {
	root     string
	maxTrees int
	parser   *parser.Parser
	quiet    bool
}

// Option configures a Source.
type Option func(*Source)

// WithMaxTrees overrides the scan budget.
func WithMaxTrees(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.maxTrees = n
		}
	}
}

// Quiet suppresses the progress spinner and scan summary.
func Quiet() Option {
	return func(s *Source) { s.quiet = true }
}

// New creates a Source over root. The caller owns the parser and its
// lifetime.
func New(root string, p *parser.Parser, opts ...Option) *Source {
	s := &Source{
		root:     root,
		maxTrees: DefaultMaxTrees,
		parser:   p,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Trees scans the root top-down for files ending in ext and returns
// their parsed trees. Directories are walked files-first; the cap is
// checked while iterating a directory's files and, once hit there, the
// walk breaks outward entirely without visiting deeper directories.
// That is a scan-budget limit, not a completeness guarantee. Unreadable
// and unparsable files are skipped with a diagnostic.
func (s *Source) Trees(ext string) []*parser.ParseResult {
	trees := make([]*parser.ParseResult, 0, s.maxTrees)

	var spinner *progress.Tracker
	if !s.quiet {
		spinner = progress.NewSpinner(fmt.Sprintf("Scanning %s...", s.root))
	}

	err := s.scanDir(s.root, ext, &trees, spinner)
	if spinner != nil {
		spinner.Finish()
	}
	if err != nil && !errors.Is(err, errCapReached) {
		fmt.Fprintf(os.Stderr, "scan aborted: %v\n", err)
	}

	if !s.quiet {
		fmt.Fprintf(os.Stderr, "total %d trees under %s\n", len(trees), s.root)
	}
	return trees
}

// TreesAll scans each extension in sequence and concatenates the
// resulting tree lists.
func (s *Source) TreesAll(exts []string) []*parser.ParseResult {
	var trees []*parser.ParseResult
	for _, ext := range exts {
		trees = append(trees, s.Trees(ext)...)
	}
	return trees
}

func (s *Source) scanDir(dir, ext string, trees *[]*parser.ParseResult, spinner *progress.Tracker) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skipping %s: %v\n", dir, err)
		return nil
	}

	// Files before subdirectories, so the budget is spent on shallow
	// files first.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if len(*trees) == s.maxTrees {
			return errCapReached
		}
		if spinner != nil {
			spinner.Tick()
		}
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		tree, err := s.parser.ParseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		*trees = append(*trees, tree)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := s.scanDir(filepath.Join(dir, entry.Name()), ext, trees, spinner); err != nil {
			return err
		}
	}
	return nil
}
