package strings

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AccentedLetters and BaseLetters pair rune for rune. SQL callers pass them
// to translate() so the database folds exactly like Fold.
const (
	AccentedLetters = "áàâäãéèêëíìîïóòôöõúùûüñç"
	BaseLetters     = "aaaaaeeeeiiiiooooouuuunc"
)

var baseOf = func() map[rune]rune {
	from, to := []rune(AccentedLetters), []rune(BaseLetters)
	m := make(map[rune]rune, len(from))
	for i, r := range from {
		m[r] = to[i]
	}
	return m
}()

// Fold lowercases s and replaces the letters in AccentedLetters with their
// base letter, so "Jiménez" and "JIMENEZ" compare equal. Other marks are kept.
func Fold(s string) string {
	t := transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
		if b, ok := baseOf[r]; ok {
			return b
		}
		return r
	}))
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// CollapseSpaces trims s and reduces internal whitespace runs to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
