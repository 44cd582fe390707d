// Command nfa loads automata from YAML or JSON files, combines or queries
// them, and prints or saves the result.
//
// Usage:
//
//	nfa [-v N] [-o out.yaml] <command> [args...]
//
// Commands:
//
//	dump FILE                 print the automaton
//	accepts FILE WORD...      report whether each word is accepted
//	union A B                 automaton of L(A) ∪ L(B)
//	shuffle A B               automaton of the interleavings of L(A) and L(B)
//	mirror A                  automaton of the reversed language
//	prune A                   drop finals and transitions not accessible
//	translate A OFFSET        shift every state id by OFFSET
//	word WORD                 chain automaton accepting exactly WORD
//	reachable FILE STATE      states reachable from STATE
//	accessible FILE           states reachable from an initial state
//	shortest FILE             a shortest accepted word
//	finite FILE               whether the accepted language is finite
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/katalvlaran/automata/automaton"
	"github.com/katalvlaran/automata/bfs"
	"github.com/katalvlaran/automata/codec"
	"github.com/katalvlaran/automata/dfs"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks wrong command-line arguments.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config holds the parsed global flags.
type config struct {
	verbosity int
	output    string
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.IntVar(&cfg.verbosity, "v", 0, "log verbosity")
	fs.StringVar(&cfg.output, "o", "", "write the resulting automaton to this .yaml/.yml/.json file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	stdr.SetVerbosity(cfg.verbosity)
	logger := stdr.New(log.New(stderr, "nfa: ", 0))

	cmd := &command{cfg: cfg, log: logger, out: stdout}
	if err := cmd.exec(fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			fs.Usage()
			return exitUsage
		}
		logger.Error(err, "command failed", "args", fs.Args())
		return exitError
	}

	return exitOK
}

// command carries what every subcommand needs.
type command struct {
	cfg config
	log logr.Logger
	out io.Writer
}

// exec dispatches args[0] to its subcommand.
func (c *command) exec(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	name, rest := args[0], args[1:]
	c.log.V(1).Info("running", "command", name, "args", rest)

	switch name {
	case "dump":
		return c.unary(rest, func(a *automaton.Automaton) (*automaton.Automaton, error) { return a, nil })
	case "mirror":
		return c.unary(rest, func(a *automaton.Automaton) (*automaton.Automaton, error) { return automaton.Mirror(a), nil })
	case "prune":
		return c.unary(rest, func(a *automaton.Automaton) (*automaton.Automaton, error) {
			return automaton.PruneToAccessible(a), nil
		})
	case "union":
		return c.binary(rest, automaton.Union)
	case "shuffle":
		return c.binary(rest, automaton.Shuffle)
	case "translate":
		return c.translate(rest)
	case "word":
		if len(rest) != 1 {
			return fmt.Errorf("%w: word WORD", errUsage)
		}
		return c.emit(automaton.FromWord(rest[0]))
	case "accepts":
		return c.accepts(rest)
	case "reachable":
		return c.reachable(rest)
	case "accessible":
		return c.accessible(rest)
	case "shortest":
		return c.shortest(rest)
	case "finite":
		return c.finite(rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
}

// load reads one automaton file.
func (c *command) load(path string) (*automaton.Automaton, error) {
	a, err := codec.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.log.V(1).Info("loaded", "file", path, "states", a.StateCount(), "transitions", a.TransitionCount())

	return a, nil
}

// emit prints a, or saves it when -o is set.
func (c *command) emit(a *automaton.Automaton) error {
	if c.cfg.output == "" {
		return a.Dump(c.out)
	}
	if err := codec.SaveFile(c.cfg.output, a); err != nil {
		return err
	}
	c.log.V(1).Info("saved", "file", c.cfg.output, "states", a.StateCount())

	return nil
}

func (c *command) unary(args []string, fn func(*automaton.Automaton) (*automaton.Automaton, error)) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one automaton file", errUsage)
	}
	a, err := c.load(args[0])
	if err != nil {
		return err
	}
	res, err := fn(a)
	if err != nil {
		return err
	}

	return c.emit(res)
}

func (c *command) binary(args []string, fn func(a, b *automaton.Automaton) *automaton.Automaton) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected two automaton files", errUsage)
	}
	a, err := c.load(args[0])
	if err != nil {
		return err
	}
	b, err := c.load(args[1])
	if err != nil {
		return err
	}

	return c.emit(fn(a, b))
}

func (c *command) translate(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: translate FILE OFFSET", errUsage)
	}
	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: bad offset %q", errUsage, args[1])
	}

	return c.unary(args[:1], func(a *automaton.Automaton) (*automaton.Automaton, error) {
		return automaton.TranslateAll(a, offset), nil
	})
}

func (c *command) accepts(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: accepts FILE WORD...", errUsage)
	}
	a, err := c.load(args[0])
	if err != nil {
		return err
	}
	for _, w := range args[1:] {
		verdict := "rejected"
		if a.Accepts(w) {
			verdict = "accepted"
		}
		if _, err = fmt.Fprintf(c.out, "%s: %s\n", w, verdict); err != nil {
			return err
		}
	}

	return nil
}

func (c *command) reachable(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: reachable FILE STATE", errUsage)
	}
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: bad state %q", errUsage, args[1])
	}
	a, err := c.load(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, automaton.ReachableFrom(a, start))

	return err
}

func (c *command) accessible(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: accessible FILE", errUsage)
	}
	a, err := c.load(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, automaton.AccessibleStates(a))

	return err
}

func (c *command) shortest(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: shortest FILE", errUsage)
	}
	a, err := c.load(args[0])
	if err != nil {
		return err
	}
	w, ok, err := bfs.ShortestAccepted(a)
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintln(c.out, "(empty language)")
		return err
	}
	_, err = fmt.Fprintf(c.out, "%q\n", w)

	return err
}

func (c *command) finite(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: finite FILE", errUsage)
	}
	a, err := c.load(args[0])
	if err != nil {
		return err
	}
	ok, err := dfs.IsFinite(a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, ok)

	return err
}
