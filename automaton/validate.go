package automaton

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks the structural invariants of a and reports every
// violation at once:
//
//   - initial ⊆ states and final ⊆ states;
//   - every transition origin and destination is a state;
//   - every transition letter belongs to the alphabet.
//
// Automata built only through the mutators always validate. Each reported
// error wraps ErrInvariant.
func (a *Automaton) Validate() error {
	var err error
	a.initial.Difference(a.states).Each(func(s int) {
		err = multierr.Append(err, fmt.Errorf("%w: initial state %d is not a state", ErrInvariant, s))
	})
	a.final.Difference(a.states).Each(func(s int) {
		err = multierr.Append(err, fmt.Errorf("%w: final state %d is not a state", ErrInvariant, s))
	})
	for _, k := range a.sortedKeys() {
		if !a.states.Has(k.Origin) {
			err = multierr.Append(err, fmt.Errorf("%w: origin %d of (%d, %c) is not a state", ErrInvariant, k.Origin, k.Origin, k.Letter))
		}
		if !a.alphabet.Has(k.Letter) {
			err = multierr.Append(err, fmt.Errorf("%w: letter %q of (%d, %c) is not in the alphabet", ErrInvariant, k.Letter, k.Origin, k.Letter))
		}
		a.transitions[k].Difference(a.states).Each(func(q int) {
			err = multierr.Append(err, fmt.Errorf("%w: destination %d of (%d, %c) is not a state", ErrInvariant, q, k.Origin, k.Letter))
		})
	}

	return err
}
