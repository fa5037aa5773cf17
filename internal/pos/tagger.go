// Package pos is the word-classification boundary: it assigns a coarse
// part-of-speech tag to a single word.
package pos

import (
	"errors"

	prose "github.com/jdkato/prose/v2"
)

// Penn Treebank tags accepted by the CLI word-type filter.
const (
	TagVerb = "VB"
	TagNoun = "NN"
)

// ErrNoTag is returned when classification produces no tag for a word.
var ErrNoTag = errors.New("no tag for word")

// Tagger classifies a single word into a part-of-speech tag.
type Tagger interface {
	Classify(word string) (string, error)
}

// ProseTagger classifies words with the prose statistical tagger.
type ProseTagger struct{}

// NewProseTagger creates a prose-backed tagger.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Classify returns the Penn Treebank tag for one word.
// Callers must not pass the empty string; it is never classified.
func (t *ProseTagger) Classify(word string) (string, error) {
	doc, err := prose.NewDocument(word,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return "", err
	}
	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return "", ErrNoTag
	}
	return tokens[0].Tag, nil
}
