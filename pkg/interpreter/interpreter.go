// Package interpreter implements the line-oriented dictionary query loop.
//
// Example:
//
//	store := dictionary.NewStore()
//	// ... load entries ...
//	in := interpreter.New(store,
//	    interpreter.WithPrompt("dict> "),
//	)
//	if err := in.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
package interpreter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/entrhq/lexicon/pkg/dictionary"
	"github.com/entrhq/lexicon/pkg/logging"
)

// DefaultPrompt is printed before each command is read
const DefaultPrompt = "> "

const helpText = `Commands:
  Count words: #<word> or #<prefix>*
  List words: =<word> or =<prefix>*
  List definitions: ?<word> or ?<prefix>*
  Match words: ~<glob pattern>
  Quit: quit
`

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB3BA")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFCCCB"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Interpreter reads commands from its input and answers them from a store.
type Interpreter struct {
	store  *dictionary.Store
	reader *bufio.Reader
	writer io.Writer
	logger *logging.Logger

	prompt string
	styled bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithReader sets the command input (default is os.Stdin).
func WithReader(r io.Reader) Option {
	return func(in *Interpreter) {
		in.reader = bufio.NewReader(r)
	}
}

// WithWriter sets the output writer (default is os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(in *Interpreter) {
		in.writer = w
	}
}

// WithPrompt sets the prompt printed before each command.
func WithPrompt(prompt string) Option {
	return func(in *Interpreter) {
		in.prompt = prompt
	}
}

// WithStyled renders words, errors and help with terminal colors.
func WithStyled(styled bool) Option {
	return func(in *Interpreter) {
		in.styled = styled
	}
}

// WithLogger sets the logger for executed commands.
func WithLogger(logger *logging.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// New creates an interpreter over store.
func New(store *dictionary.Store, opts ...Option) *Interpreter {
	in := &Interpreter{
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
		logger: logging.Discard(),
		prompt: DefaultPrompt,
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Run prints the command list and then answers commands until quit, end of
// input or cancellation of ctx. End of input is not an error.
func (in *Interpreter) Run(ctx context.Context) error {
	in.printHelp()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintf(in.writer, "\n%s", in.prompt)
		line, err := in.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read command: %w", err)
		}
		if line == "" && err != nil {
			fmt.Fprintln(in.writer)
			return nil
		}

		if !in.Execute(line) {
			return nil
		}
	}
}

// Execute runs a single command line. It returns false once the session
// should end.
func (in *Interpreter) Execute(line string) bool {
	cmd, ok := Parse(line)
	if !ok {
		in.printHelp()
		return true
	}

	in.logger.Debugf("command kind=%d word=%q", cmd.Kind, cmd.Word)

	switch cmd.Kind {
	case KindQuit:
		fmt.Fprintln(in.writer, "Done.")
		return false
	case KindCount:
		fmt.Fprintf(in.writer, "%d\n", in.store.Count(cmd.Word))
	case KindWords:
		in.printMatches(cmd.Word, in.store.FindAll(cmd.Word), in.printWord)
	case KindDefinitions:
		in.printMatches(cmd.Word, in.store.FindAll(cmd.Word), in.printDefinition)
	case KindGlob:
		matches, err := in.store.GlobAll(cmd.Word)
		if err != nil {
			in.logger.Warnf("glob %q: %v", cmd.Word, err)
			fmt.Fprintln(in.writer, in.render(errorStyle, err.Error()))
			return true
		}
		in.printMatches(cmd.Word, matches, in.printWord)
	default:
		in.printHelp()
	}
	return true
}

func (in *Interpreter) printMatches(word string, matches []int, print func(int)) {
	if len(matches) == 0 {
		fmt.Fprintln(in.writer, in.render(errorStyle, fmt.Sprintf("No definitions match '%s'", word)))
		return
	}
	for _, i := range matches {
		print(i)
	}
}

func (in *Interpreter) printWord(i int) {
	if word, ok := in.store.WordAt(i); ok {
		fmt.Fprintln(in.writer, in.render(wordStyle, word))
	}
}

func (in *Interpreter) printDefinition(i int) {
	if def, ok := in.store.DefinitionAt(i); ok {
		fmt.Fprintf(in.writer, "%s\n\n", def)
	}
}

func (in *Interpreter) printHelp() {
	fmt.Fprint(in.writer, in.render(helpStyle, helpText))
}

func (in *Interpreter) render(style lipgloss.Style, s string) string {
	if !in.styled {
		return s
	}
	return style.Render(s)
}
