package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	hangulSyllableLo = '가'
	hangulSyllableHi = '힣'
)

// Tokenize lowercases text, keeps word characters and Hangul
// syllables, replaces everything else with spaces, and returns the
// resulting tokens longer than one rune. Pure and deterministic;
// empty input yields no tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= hangulSyllableLo && r <= hangulSyllableHi:
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
