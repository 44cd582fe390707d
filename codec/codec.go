package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/automata/automaton"
)

// Sentinel errors for document conversion.
var (
	// ErrBadLetter indicates a letter that is not exactly one character.
	ErrBadLetter = errors.New("codec: letter must be a single character")

	// ErrUnknownFormat indicates a file extension with no known encoding.
	ErrUnknownFormat = errors.New("codec: unknown file format")

	// ErrDecode wraps syntax errors from the underlying YAML/JSON decoder.
	ErrDecode = errors.New("codec: cannot decode document")
)

// Transition is the document form of one edge.
type Transition struct {
	From   int    `json:"from" yaml:"from"`
	Letter string `json:"letter" yaml:"letter"`
	To     int    `json:"to" yaml:"to"`
}

// Document is the serializable form of an automaton.
type Document struct {
	States      []int        `json:"states,omitempty" yaml:"states,omitempty"`
	Initial     []int        `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final       []int        `json:"final,omitempty" yaml:"final,omitempty"`
	Alphabet    []string     `json:"alphabet,omitempty" yaml:"alphabet,omitempty"`
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// FromAutomaton builds the document of a. Lists are sorted.
func FromAutomaton(a *automaton.Automaton) Document {
	doc := Document{
		States:  a.States().Items(),
		Initial: a.Initial().Items(),
		Final:   a.Final().Items(),
	}
	for _, c := range a.Alphabet().Items() {
		doc.Alphabet = append(doc.Alphabet, string(c))
	}
	for _, t := range a.Transitions() {
		doc.Transitions = append(doc.Transitions, Transition{From: t.Origin, Letter: string(t.Letter), To: t.Dest})
	}

	return doc
}

// Automaton rebuilds the automaton described by doc.
// All malformed letters are reported together.
func (doc Document) Automaton() (*automaton.Automaton, error) {
	a := automaton.New()
	var err error
	for _, s := range doc.States {
		a.AddState(s)
	}
	for _, s := range doc.Initial {
		a.AddInitial(s)
	}
	for _, s := range doc.Final {
		a.AddFinal(s)
	}
	for i, l := range doc.Alphabet {
		c, lerr := parseLetter(l)
		if lerr != nil {
			err = multierr.Append(err, fmt.Errorf("alphabet[%d]: %w", i, lerr))
			continue
		}
		a.AddLetter(c)
	}
	for i, t := range doc.Transitions {
		c, lerr := parseLetter(t.Letter)
		if lerr != nil {
			err = multierr.Append(err, fmt.Errorf("transitions[%d]: %w", i, lerr))
			continue
		}
		a.AddTransition(t.From, c, t.To)
	}
	if err != nil {
		return nil, err
	}

	return a, a.Validate()
}

// parseLetter returns the only rune of l.
func parseLetter(l string) (rune, error) {
	if utf8.RuneCountInString(l) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadLetter, l)
	}
	c, _ := utf8.DecodeRuneInString(l)

	return c, nil
}

// EncodeYAML writes the YAML document of a to w.
func EncodeYAML(w io.Writer, a *automaton.Automaton) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromAutomaton(a)); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	return enc.Close()
}

// DecodeYAML reads one YAML document from r.
func DecodeYAML(r io.Reader) (*automaton.Automaton, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}

	return doc.Automaton()
}

// EncodeJSON writes the indented JSON document of a to w.
func EncodeJSON(w io.Writer, a *automaton.Automaton) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromAutomaton(a)); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

// DecodeJSON reads one JSON document from r.
func DecodeJSON(r io.Reader) (*automaton.Automaton, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrDecode, err)
	}

	return doc.Automaton()
}

// LoadFile reads an automaton from path, choosing the format by extension.
func LoadFile(path string) (*automaton.Automaton, error) {
	decode, _, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	a, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// SaveFile writes a to path, choosing the format by extension.
func SaveFile(path string, a *automaton.Automaton) (err error) {
	_, encode, err := formatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return encode(f, a)
}

// formatFor maps a file extension to its decoder and encoder.
func formatFor(path string) (func(io.Reader) (*automaton.Automaton, error), func(io.Writer, *automaton.Automaton) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAML, EncodeYAML, nil
	case ".json":
		return DecodeJSON, EncodeJSON, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
