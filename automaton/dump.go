package automaton

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/automata/set"
)

// Dump writes a human-readable description of a to w:
//
//	- States : {1, 2}
//	- Initial : {1}
//	- Final : {2}
//	- Alphabet : {a, b}
//	- Transitions : (1, a) -> {1}; (1, b) -> {2}
//
// Output is deterministic but is meant for inspection, not for parsing;
// use package codec for a stable document form.
func (a *Automaton) Dump(w io.Writer) error {
	_, err := io.WriteString(w, a.String())

	return err
}

// String returns the Dump text.
func (a *Automaton) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- States : %s\n", a.states)
	fmt.Fprintf(&b, "- Initial : %s\n", a.initial)
	fmt.Fprintf(&b, "- Final : %s\n", a.final)
	fmt.Fprintf(&b, "- Alphabet : %s\n", FormatLetters(a.alphabet))
	b.WriteString("- Transitions : ")
	for i, k := range a.sortedKeys() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "(%d, %c) -> %s", k.Origin, k.Letter, a.transitions[k])
	}
	b.WriteByte('\n')

	return b.String()
}

// FormatLetters renders a letter set as "{a, b}".
func FormatLetters(letters *set.Set[rune]) string {
	return letters.Format(func(c rune) string { return string(c) })
}
