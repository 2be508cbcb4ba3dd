package knowledge

import (
	"strings"
	"unicode"

	"github.com/spigell/careerise/internal/normalize"
)

// Vocabulary is the fixed set of skills the extractor recognises.
//
// Keys are stored once, lowercase and whitespace-normalized. The display form is derived from the key
// by title-casing each letter run, except runs listed as acronyms which are upper-cased.
type Vocabulary struct {
	keys     []string
	acronyms map[string]struct{}
}

// NewVocabulary normalizes and de-duplicates skills, keeping declaration order.
func NewVocabulary(skills, acronyms []string) *Vocabulary {
	v := &Vocabulary{
		keys:     make([]string, 0, len(skills)),
		acronyms: make(map[string]struct{}, len(acronyms)),
	}

	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		key := normalize.Key(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		v.keys = append(v.keys, key)
	}

	for _, a := range acronyms {
		if a = normalize.Key(a); a != "" {
			v.acronyms[a] = struct{}{}
		}
	}

	return v
}

// Keys returns a copy of the canonical skill keys.
func (v *Vocabulary) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

func (v *Vocabulary) Len() int {
	return len(v.keys)
}

// Display renders a canonical key, e.g. "python" -> "Python", "rest api" -> "Rest API", "c++" -> "C++".
func (v *Vocabulary) Display(key string) string {
	var (
		out  strings.Builder
		word []rune
	)

	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		if _, ok := v.acronyms[w]; ok {
			out.WriteString(strings.ToUpper(w))
		} else {
			out.WriteRune(unicode.ToUpper(word[0]))
			out.WriteString(string(word[1:]))
		}
		word = word[:0]
	}

	for _, r := range strings.ToLower(key) {
		if unicode.IsLetter(r) {
			word = append(word, r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()

	return out.String()
}
