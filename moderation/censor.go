// Package moderation masks configured words in outgoing messages before they
// leave the client.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Censor is an Aho-Corasick automaton over normalized words.
// A nil *Censor lets every message through untouched.
type Censor struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewCensor builds a censor for words. Words that normalize to nothing
// (pure punctuation, blanks) are ignored; when none is left it returns nil.
func NewCensor(words []string, replacement rune) (*Censor, error) {
	patterns := lo.FilterMap(words, func(word string, _ int) ([]rune, bool) {
		normalized := normalize([]rune(word))
		return normalized, len(normalized) > 0
	})
	if len(patterns) == 0 {
		return nil, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Censor{matcher: m, replacement: replacement}, nil
}

// Apply masks every occurrence of a censored word, keeping the spacing and
// punctuation around it, and returns the normalized words it found. A match
// only counts when it is not glued to letters or digits, so "class" survives a
// censored "ass".
func (c *Censor) Apply(text string) (string, []string) {
	if c == nil || text == "" {
		return text, nil
	}

	runes := []rune(text)
	normalized := make([]rune, 0, len(runes))
	positions := make([]int, 0, len(runes))
	for i, r := range runes {
		clean := simplify(r)
		if isNoise(clean) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(clean))
		positions = append(positions, i)
	}

	terms := c.matcher.MultiPatternSearch(normalized, false)
	if len(terms) == 0 {
		return text, nil
	}

	found := make([]string, 0, len(terms))
	for _, term := range terms {
		end := term.Pos + len(term.Word)
		if term.Pos < 0 || end > len(positions) {
			continue
		}
		first, last := positions[term.Pos], positions[end-1]
		if !atBoundary(runes, first-1) || !atBoundary(runes, last+1) {
			continue
		}
		for i := first; i <= last; i++ {
			runes[i] = c.replacement
		}
		found = append(found, string(term.Word))
	}
	return string(runes), found
}

func normalize(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplify(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplify maps leet speak back to letters.
func simplify(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// atBoundary reports whether index i lies outside text or on a rune that
// cannot continue a word.
func atBoundary(text []rune, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	return !unicode.IsLetter(text[i]) && !unicode.IsDigit(text[i])
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
