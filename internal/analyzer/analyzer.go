// Package analyzer orchestrates the identifier-analysis pipeline:
// directory scan, extraction strategy, and word report.
//
// Analyzer is an immutable configuration value. Chained calls return a
// new value; Run materializes the pipeline in one pass. Changing the
// scan scope (path or extensions) discards any report configuration, so
// the word list a run produces always reflects exactly the scope last
// applied. Callers re-issue the filter, split, and top calls after a
// scope change.
package analyzer

import (
	"nomen/internal/extract"
	"nomen/internal/pos"
	"nomen/internal/report"
	"nomen/internal/treesource"
	"nomen/pkg/parser"
)

// DefaultTopSize is the ranked-report size when none is requested.
const DefaultTopSize = 10

// DefaultExtensions is the file-extension set scanned by default.
var DefaultExtensions = []string{".py"}

// Analyzer is an immutable pipeline configuration.
type Analyzer struct {
	path       string
	extensions []string
	strategy   extract.Strategy
	tagger     pos.Tagger
	maxTrees   int
	quiet      bool

	wordClass string
	split     bool
	topSize   int // 0 means unranked, all occurrences
}

// New creates an analyzer over path with the default scope: .py files,
// all-names extraction, unranked report.
func New(path string) Analyzer {
	return Analyzer{
		path:       path,
		extensions: DefaultExtensions,
		strategy:   extract.AllNames{},
		maxTrees:   treesource.DefaultMaxTrees,
	}
}

// resetReport discards report configuration after a scope change.
func (a Analyzer) resetReport() Analyzer {
	a.wordClass = ""
	a.split = false
	a.topSize = 0
	return a
}

// WithPath changes the scan root. Report configuration is discarded.
func (a Analyzer) WithPath(path string) Analyzer {
	a.path = path
	return a.resetReport()
}

// WithExtensions changes the scanned extension set. Report configuration
// is discarded.
func (a Analyzer) WithExtensions(exts []string) Analyzer {
	a.extensions = append([]string(nil), exts...)
	return a.resetReport()
}

// WithStrategy selects the extraction strategy.
func (a Analyzer) WithStrategy(s extract.Strategy) Analyzer {
	a.strategy = s
	return a
}

// WithTagger overrides the word classifier. Run defaults to the prose
// tagger when none is set.
func (a Analyzer) WithTagger(t pos.Tagger) Analyzer {
	a.tagger = t
	return a
}

// WithMaxTrees overrides the scan budget.
func (a Analyzer) WithMaxTrees(n int) Analyzer {
	if n > 0 {
		a.maxTrees = n
	}
	return a
}

// Quiet suppresses scan progress output.
func (a Analyzer) Quiet() Analyzer {
	a.quiet = true
	return a
}

// FilterVerb keeps only words classified as verbs.
func (a Analyzer) FilterVerb() Analyzer {
	a.wordClass = pos.TagVerb
	return a
}

// FilterNoun keeps only words classified as nouns.
func (a Analyzer) FilterNoun() Analyzer {
	a.wordClass = pos.TagNoun
	return a
}

// Split breaks compound identifiers into constituent words.
func (a Analyzer) Split() Analyzer {
	a.split = true
	return a
}

// Top requests the n most frequent distinct words, counted. Non-positive
// n falls back to DefaultTopSize.
func (a Analyzer) Top(n int) Analyzer {
	if n <= 0 {
		n = DefaultTopSize
	}
	a.topSize = n
	return a
}

// All requests every occurrence, unranked.
func (a Analyzer) All() Analyzer {
	a.topSize = 0
	return a
}

// Run materializes the pipeline: scan, extract, then the report stages
// in fixed order (split, case fold, class filter, truncation). Every
// failure along the way degrades to fewer results, never an error.
func (a Analyzer) Run() []report.Entry {
	p := parser.New()
	defer p.Close()

	opts := []treesource.Option{treesource.WithMaxTrees(a.maxTrees)}
	if a.quiet {
		opts = append(opts, treesource.Quiet())
	}
	src := treesource.New(a.path, p, opts...)
	trees := src.TreesAll(a.extensions)

	rep := report.New()
	rep.SetWords(a.strategy.Extract(trees))

	if a.split {
		rep.Split()
	}
	if a.strategy.FoldsCase() {
		rep.FoldLower()
	}
	if a.wordClass != "" {
		tagger := a.tagger
		if tagger == nil {
			tagger = pos.NewProseTagger()
		}
		rep.FilterByClass(tagger, a.wordClass)
	}
	if a.topSize > 0 {
		rep.SetTopSize(a.topSize)
	} else {
		rep.ClearTopSize()
	}
	return rep.Build()
}
