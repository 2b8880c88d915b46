// Package session runs the interactive read-eval-print loop: it reads command
// lines, resolves them with typo tolerance, keeps the pending confirmation or
// selection between lines and dispatches resolved commands to their handlers.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/contact"
	"github.com/tartampluch/contactbook/internal/engine"
	"github.com/tartampluch/contactbook/internal/i18n"
	"github.com/tartampluch/contactbook/internal/resolver"
)

// Saver persists the book when the session ends.
type Saver interface {
	Save(book *contact.Book) error
}

// Options wires a Session. Nil fields, an empty language, zero resolver
// ratios and a zero MaxLineBytes get defaults. A zero birthday window is
// kept: it lists today's birthdays only.
type Options struct {
	Book         *contact.Book
	Store        Saver
	In           io.Reader
	Out          io.Writer
	Translator   *i18n.Translator
	Clock        engine.Clock
	Settings     config.Settings
	NoColor      bool
	MaxLineBytes int
}

// State is the resolution state carried from one input line to the next.
type State interface {
	isState()
}

// Idle expects a new command line.
type Idle struct{}

// AwaitingConfirmation expects a yes/no answer for a tentative match.
type AwaitingConfirmation struct {
	Command string
	Args    []string
}

// AwaitingSelection expects the 1-based index of one of Candidates.
type AwaitingSelection struct {
	Candidates []string
	Args       []string
}

func (Idle) isState()                 {}
func (AwaitingConfirmation) isState() {}
func (AwaitingSelection) isState()    {}

// Session is one interactive run over a book.
type Session struct {
	book     *contact.Book
	store    Saver
	in       *lineReader
	out      io.Writer
	tr       *i18n.Translator
	clock    engine.Clock
	window   int
	styles   styles
	commands map[string]*command
	ordered  []*command
	maxLine  int
	resolver *resolver.Resolver
	saveErr  error
}

// New builds a Session from opts.
func New(opts Options) *Session {
	if opts.Book == nil {
		opts.Book = contact.NewBook()
	}
	if opts.Settings.Language == "" {
		opts.Settings.Language = config.DefaultLanguage
	}
	if opts.Translator == nil {
		opts.Translator = i18n.New(opts.Settings.Language)
	}
	if opts.Clock == nil {
		opts.Clock = engine.SystemClock{}
	}
	if opts.Settings.Resolver.AutoAccept == 0 {
		opts.Settings.Resolver = config.DefaultSettings().Resolver
	}
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = config.MaxLineBytes
	}

	s := &Session{
		book:    opts.Book,
		store:   opts.Store,
		in:      newLineReader(opts.In, opts.MaxLineBytes),
		out:     opts.Out,
		tr:      opts.Translator,
		clock:   opts.Clock,
		window:  opts.Settings.BirthdayWindowDays,
		styles:  newStyles(opts.Out, opts.NoColor),
		maxLine: opts.MaxLineBytes,
	}

	s.commands = make(map[string]*command)
	var names, exits []string
	for _, c := range commandTable() {
		s.commands[c.name] = c
		s.ordered = append(s.ordered, c)
		names = append(names, c.name)
		if c.kind == CmdExit {
			exits = append(exits, c.name)
		}
	}
	s.resolver = resolver.New(names,
		resolver.WithThresholds(opts.Settings.Resolver.AutoAccept, opts.Settings.Resolver.Suggest),
		resolver.WithPriority(exits...),
	)
	return s
}

// Book returns the book the session works on.
func (s *Session) Book() *contact.Book {
	return s.book
}

// Run loops until an exit command, the end of input or cancellation of ctx.
// Exit and end of input save the book; cancellation does not. An over-long
// line is reported and skipped.
func (s *Session) Run(ctx context.Context) error {
	s.println(s.t(config.TKeyGreeting, nil))

	var st State = Idle{}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := st.(Idle); ok {
			fmt.Fprint(s.out, s.styles.prompt.Render(s.t(config.TKeyPrompt, nil)))
		}
		line, err := s.in.next()
		switch {
		case errors.Is(err, errLineTooLong):
			slog.Warn(config.MsgLineSkipped,
				config.LogKeyComponent, config.CompSession,
				config.LogKeyError, err)
			s.printError(s.t(config.TKeyLineTooLong, map[string]any{"Max": s.maxLine}))
			st = Idle{}
			continue
		case errors.Is(err, io.EOF):
			s.println("")
			s.exit()
			return s.saveErr
		case err != nil:
			// Input is gone; keep what was done so far.
			s.exit()
			return errors.Join(err, s.saveErr)
		}

		var done bool
		st, done = s.Step(st, line)
		if done {
			return s.saveErr
		}
	}
}

// Step processes one input line in state st and returns the next state.
// done is true once an exit command has run.
func (s *Session) Step(st State, line string) (next State, done bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return st, false
	}

	switch cur := st.(type) {
	case AwaitingConfirmation:
		if slices.Contains(config.ConfirmAnswers, strings.ToLower(tokens[0])) {
			return s.dispatch(cur.Command, cur.Args)
		}
		s.println(s.t(config.TKeyCancelled, nil))
		return Idle{}, false

	case AwaitingSelection:
		n, err := strconv.Atoi(tokens[0])
		if err != nil || n < 1 || n > len(cur.Candidates) {
			s.printError(s.t(config.TKeyInvalidPick, nil))
			return Idle{}, false
		}
		args := cur.Args
		if len(tokens) > 1 {
			args = tokens[1:]
		}
		return s.dispatch(cur.Candidates[n-1], args)
	}

	res := s.resolver.Resolve(line)
	switch res.Kind {
	case resolver.Certain:
		return s.dispatch(res.Command, res.Args)

	case resolver.Tentative:
		fmt.Fprint(s.out, s.t(config.TKeyDidYouMean, map[string]any{"Command": res.Command}))
		return AwaitingConfirmation{Command: res.Command, Args: res.Args}, false

	case resolver.Ambiguous:
		s.println(s.t(config.TKeyChooseOne, nil))
		for i, c := range res.Candidates {
			s.println(fmt.Sprintf("  %d. %s", i+1, c))
		}
		return AwaitingSelection{Candidates: res.Candidates, Args: res.Args}, false

	default:
		slog.Info(config.MsgCommandUnknown,
			config.LogKeyComponent, config.CompSession,
			config.LogKeyInput, res.Input)
		s.printError(s.t(config.TKeyUnknownCmd, map[string]any{"Input": res.Input}))
		return Idle{}, false
	}
}

// dispatch checks the argument contract and runs the handler.
func (s *Session) dispatch(name string, args []string) (State, bool) {
	cmd, ok := s.commands[name]
	if !ok {
		s.printError(s.t(config.TKeyUnknownCmd, map[string]any{"Input": name}))
		return Idle{}, false
	}
	if len(args) < cmd.minArgs {
		s.printError(s.t(config.TKeyInsufficient, map[string]any{"Command": cmd.name, "Usage": cmd.usage}))
		return Idle{}, false
	}

	slog.Info(config.MsgCommandExec,
		config.LogKeyComponent, config.CompSession,
		config.LogKeyCommand, cmd.name,
		config.LogKeyArgs, len(args))

	if cmd.kind == CmdExit {
		s.exit()
		return Idle{}, true
	}

	msg, err := cmd.run(s, args)
	if err != nil {
		slog.Warn(config.MsgCommandFailed,
			config.LogKeyComponent, config.CompSession,
			config.LogKeyCommand, cmd.name,
			config.LogKeyError, err)
		s.printError(s.describe(err, args))
		return Idle{}, false
	}
	if msg != "" {
		s.println(msg)
	}
	return Idle{}, false
}

// exit saves the book and says goodbye. A failed save is reported and kept
// for Run to return.
func (s *Session) exit() {
	if s.store != nil {
		if err := s.store.Save(s.book); err != nil {
			s.saveErr = err
			s.printError(s.t(config.TKeySaveFailed, map[string]any{"Error": err.Error()}))
		}
	}
	s.println(s.t(config.TKeyFarewell, nil))
}

// describe turns a handler error into a user message. args[0] is the
// contact name for every contact command.
func (s *Session) describe(err error, args []string) string {
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		return s.t(config.TKeyInvalidInput, map[string]any{"Error": verr.Reason})
	case errors.Is(err, contact.ErrNotFound):
		return s.t(config.TKeyNotFound, map[string]any{"Name": args[0]})
	case errors.Is(err, contact.ErrPhoneNotFound):
		return s.t(config.TKeyPhoneNotFound, map[string]any{"Name": args[0], "Phone": args[1]})
	case errors.Is(err, contact.ErrEmailAlreadyUnset):
		return s.t(config.TKeyEmailUnset, map[string]any{"Name": args[0]})
	case errors.Is(err, contact.ErrEmptyName):
		return s.t(config.TKeyInvalidInput, map[string]any{"Error": err.Error()})
	default:
		return s.t(config.TKeyFailed, map[string]any{"Error": err.Error()})
	}
}

func (s *Session) t(key string, data map[string]any) string {
	return s.tr.T(key, data)
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) printError(msg string) {
	fmt.Fprintln(s.out, s.styles.err.Render(msg))
}
