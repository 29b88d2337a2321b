// Package moderation masks blacklisted words in chat text. Matching ignores
// case, punctuation and common leet substitutions, so "B.4.d.g.€r" still
// matches "badger"; masking keeps the original spacing and length.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

const DefaultReplacement = '*'

type Moderator struct {
	log         *slog.Logger
	matcher     *goahocorasick.Machine
	replacement rune
}

// folded is the searchable form of a text: letters only, lowered, with the
// index of each kept rune in the original.
type folded struct {
	runes  []rune
	origin []int
}

// NewModerator builds the automaton from words. Words made only of noise
// are skipped; an empty list gives a moderator that never changes text.
func NewModerator(words []string, replacement rune, log *slog.Logger) (*Moderator, error) {
	if replacement == 0 {
		replacement = DefaultReplacement
	}
	m := &Moderator{log: log, replacement: replacement}

	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if f := fold(word); len(f.runes) > 0 {
			patterns = append(patterns, f.runes)
		}
	}
	if len(patterns) == 0 {
		return m, nil
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.matcher = machine
	log.Debug("Moderator ready", "words", len(patterns))
	return m, nil
}

// Censor returns text with every blacklisted word masked, plus the matched
// words in order of appearance (nil when nothing matched).
func (m *Moderator) Censor(text string) (string, []string) {
	if m == nil || m.matcher == nil || text == "" {
		return text, nil
	}
	f := fold(text)
	if len(f.runes) == 0 {
		return text, nil
	}
	hits := m.matcher.MultiPatternSearch(f.runes, false)
	if len(hits) == 0 {
		return text, nil
	}

	out := []rune(text)
	var words []string
	for _, hit := range hits {
		end := hit.Pos + len(hit.Word)
		if hit.Pos < 0 || end > len(f.origin) {
			continue
		}
		for i := f.origin[hit.Pos]; i <= f.origin[end-1]; i++ {
			out[i] = m.replacement
		}
		words = append(words, string(hit.Word))
	}
	return string(out), words
}

func fold(s string) folded {
	src := []rune(s)
	f := folded{runes: make([]rune, 0, len(src)), origin: make([]int, 0, len(src))}
	for i, r := range src {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(r))
		f.origin = append(f.origin, i)
	}
	return f
}

func unleet(r rune) rune {
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
	}
	return r
}
