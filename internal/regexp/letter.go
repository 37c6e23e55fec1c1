package regexp

import (
	"fmt"
	"unicode/utf8"
)

// Letter is a symbol of the text syntax. It marshals as a one-rune string so
// persisted automata stay readable.
type Letter rune

func (l Letter) String() string { return string(rune(l)) }

func (l Letter) MarshalText() ([]byte, error) { return []byte(string(rune(l))), nil }

func (l *Letter) UnmarshalText(b []byte) error {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError || size != len(b) {
		return fmt.Errorf("letter: want exactly one rune, got %q", b)
	}
	*l = Letter(r)
	return nil
}

// Letters splits a word into letters, ready for Accept.
func Letters(word string) []Letter {
	out := make([]Letter, 0, len(word))
	for _, r := range word {
		out = append(out, Letter(r))
	}
	return out
}
