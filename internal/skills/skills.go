// Package skills matches a skill vocabulary against résumé text.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/normalize"
)

var (
	// A "Skills" label, optionally followed by ":" or "-", and the rest of the line.
	// The label may end its line, in which case the list on the next line is taken.
	labeledBlockRe = regexp.MustCompile(`(?i)skills?[:\-]?\s*(.+)`)
	blockSplitRe   = regexp.MustCompile(`[,|/•·]`)
)

// Extractor finds vocabulary skills in text. It is safe for concurrent use.
type Extractor struct {
	vocabulary *knowledge.Vocabulary
}

func NewExtractor(vocabulary *knowledge.Vocabulary) *Extractor {
	return &Extractor{vocabulary: vocabulary}
}

// Extract returns the sorted display forms of every vocabulary skill found in text.
// Two passes are unioned: a scan of the whole text and a scan of each labeled "Skills:" block.
// The result is never nil.
func (e *Extractor) Extract(text string) []string {
	found := make(map[string]struct{})

	e.matchInto(found, normalize.Text(text))

	for _, block := range LabeledBlocks(text) {
		for _, token := range blockSplitRe.Split(block, -1) {
			if token = normalize.Text(token); token != "" {
				e.matchInto(found, token)
			}
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

func (e *Extractor) matchInto(found map[string]struct{}, normalized string) {
	for _, key := range e.vocabulary.Keys() {
		if strings.Contains(normalized, key) {
			found[e.vocabulary.Display(key)] = struct{}{}
		}
	}
}

// LabeledBlocks returns the text following every "Skills" label up to the end of its line.
func LabeledBlocks(text string) []string {
	matches := labeledBlockRe.FindAllStringSubmatch(text, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return blocks
}
