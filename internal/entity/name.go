package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minNameWords      = 2
	maxNameWords      = 4
	maxFirstLineWords = 5
	nameLookBehind    = 2
)

// GuessName is a positional heuristic, not an authoritative parse.
//
// When email is known, the lines directly above the first line that contains it are checked,
// earliest first, for something shaped like a name: 2 to 4 words starting with a letter.
// Otherwise the first line of the document is used if it is short (5 words or fewer).
// An empty string means no guess.
func GuessName(text, email string) string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return ""
	}

	if email != "" {
		for i, line := range lines {
			if !strings.Contains(line, email) {
				continue
			}
			for j := max(0, i-nameLookBehind); j < i; j++ {
				if looksLikeName(lines[j]) {
					return lines[j]
				}
			}
		}
	}

	if len(strings.Fields(lines[0])) <= maxFirstLineWords {
		return lines[0]
	}

	return ""
}

func looksLikeName(line string) bool {
	words := len(strings.Fields(line))
	if words < minNameWords || words > maxNameWords {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsLetter(first)
}

func nonEmptyLines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
