// Package codec converts automata to and from a stable document form,
// serialized as YAML (gopkg.in/yaml.v3) or JSON.
//
// Document layout:
//
//	states: [1, 2]
//	initial: [1]
//	final: [2]
//	alphabet: [a, b]
//	transitions:
//	  - {from: 1, letter: a, to: 1}
//	  - {from: 1, letter: b, to: 2}
//
// Encoding is deterministic: every list is sorted. Decoding rebuilds the
// automaton through its mutators, so states mentioned only in transitions
// or markers are added implicitly; every malformed letter is reported at
// once (go.uber.org/multierr), each wrapped in ErrBadLetter.
//
// LoadFile and SaveFile pick the format from the file extension:
// .yaml/.yml for YAML, .json for JSON.
package codec
