// Package report holds the working word list of an analysis run and the
// transformations over it: compound splitting, word-class filtering, and
// top-N frequency truncation.
package report

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/camelcase"

	"nomen/internal/pos"
)

// Entry is one row of a finished report: a word and its occurrence
// count. Counted is false for unranked reports, where the count slot is
// rendered empty.
type Entry struct {
	Word    string
	Count   int
	Counted bool
}

// MarshalJSON renders the entry as a two-element tuple, matching the
// report.json layout: ["word", 3] or ["word", ""].
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Counted {
		return json.Marshal([2]any{e.Word, e.Count})
	}
	return json.Marshal([2]any{e.Word, ""})
}

// Record renders the entry as a CSV record.
func (e Entry) Record() []string {
	if e.Counted {
		return []string{e.Word, strconv.Itoa(e.Count)}
	}
	return []string{e.Word, ""}
}

// Report owns a single ordered word list. Transformations mutate the
// list in place; SetWords is the reset point.
type Report struct {
	words   []string
	topSize int // 0 means all occurrences, unranked
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// SetWords replaces the working list.
func (r *Report) SetWords(words []string) {
	r.words = append([]string(nil), words...)
}

// Words returns a copy of the current working list.
func (r *Report) Words() []string {
	return append([]string(nil), r.words...)
}

// Split replaces each word with its compound segments, flattened and
// order-preserving: underscore-delimited segments, each further split on
// camel-case humps. A word with no compound boundary passes through as a
// single unchanged segment.
func (r *Report) Split() {
	split := make([]string, 0, len(r.words))
	for _, word := range r.words {
		split = append(split, SplitWord(word)...)
	}
	r.words = split
}

// SplitWord returns the non-empty compound segments of one identifier.
func SplitWord(word string) []string {
	var segments []string
	for _, part := range strings.Split(word, "_") {
		if part == "" {
			continue
		}
		for _, seg := range camelcase.Split(part) {
			if seg != "" {
				segments = append(segments, seg)
			}
		}
	}
	return segments
}

// FoldLower lowercases every word in the list. Applied after Split for
// function-name reports so camel-case names split before folding.
func (r *Report) FoldLower() {
	for i, word := range r.words {
		r.words[i] = strings.ToLower(word)
	}
}

// FilterByClass keeps only words whose part-of-speech tag equals class.
// Empty words never match and are never passed to the tagger; words the
// tagger fails on are treated as non-matching.
func (r *Report) FilterByClass(tagger pos.Tagger, class string) {
	kept := r.words[:0]
	for _, word := range r.words {
		if word == "" {
			continue
		}
		tag, err := tagger.Classify(word)
		if err != nil || tag != class {
			continue
		}
		kept = append(kept, word)
	}
	r.words = kept
}

// SetTopSize configures top-N truncation for Build.
func (r *Report) SetTopSize(n int) {
	r.topSize = n
}

// ClearTopSize restores the unranked, all-occurrences mode.
func (r *Report) ClearTopSize() {
	r.topSize = 0
}

// Build produces the final entry sequence. With a top size set it
// returns the N most frequent distinct words with counts; otherwise one
// uncounted entry per occurrence, in list order.
func (r *Report) Build() []Entry {
	if r.topSize > 0 {
		return Rank(r.words, r.topSize)
	}
	entries := make([]Entry, len(r.words))
	for i, word := range r.words {
		entries[i] = Entry{Word: word}
	}
	return entries
}

// Rank counts occurrences and returns up to limit distinct words ordered
// by descending count. Ties keep first-seen insertion order: the sort is
// stable over words collected in first-occurrence order, so equally
// frequent words never reorder.
func Rank(words []string, limit int) []Entry {
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, word := range words {
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	entries := make([]Entry, len(order))
	for i, word := range order {
		entries[i] = Entry{Word: word, Count: counts[word], Counted: true}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
