// Package chambers loads entries from the Project Gutenberg text of
// Chambers's Twentieth Century Dictionary into a dictionary.Store.
//
// Entries in the text are paragraphs separated by a blank line. The first
// line opens with the headword and a comma:
//
//	SAKE, sak'e, _n._ a Japanese fermented liquor made from rice: a generic
//	name for all spirituous liquors.
//
// Each paragraph becomes one entry whose word is the headword and whose
// definition is the whole paragraph with "\r\n" normalised to "\n".
package chambers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/entrhq/lexicon/pkg/dictionary"
	"github.com/entrhq/lexicon/pkg/logging"
)

const (
	// DefaultMaxWord is the headword length at which an entry is skipped
	DefaultMaxWord = 64

	// DefaultMaxDefinition is the definition length at which lines are dropped
	DefaultMaxDefinition = 20000

	// DefaultSource is part 4 of 4 (S-Z and supplements) on Project Gutenberg
	DefaultSource = "http://www.gutenberg.org/cache/epub/38700/pg38700.txt"

	// DefaultFirstWord and DefaultLastWord bound the S section of part 4
	DefaultFirstWord = "SAB"
	DefaultLastWord  = "SYZYGY"
)

// ErrFirstWordNotFound is returned when the text has no entry for the first word.
var ErrFirstWordNotFound = errors.New("first word not found")

// Stats summarises a Load.
type Stats struct {
	Loaded    int // entries appended to the store
	Skipped   int // entries dropped because the headword was too long
	Truncated int // definitions that lost lines to the length limit
	Longest   int // longest definition seen, before truncation
}

// Loader reads Chambers-format text.
type Loader struct {
	firstWord     string
	lastWord      string
	maxWord       int
	maxDefinition int
	logger        *logging.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRange limits loading to entries from the first line starting with
// "<first>," through the entry whose headword equals last. An empty first
// starts at the first entry; an empty last reads to the end.
func WithRange(first, last string) LoaderOption {
	return func(l *Loader) {
		l.firstWord = first
		l.lastWord = last
	}
}

// WithMaxWord sets the headword length at which entries are skipped.
func WithMaxWord(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.maxWord = n
		}
	}
}

// WithMaxDefinition sets the definition length limit.
func WithMaxDefinition(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.maxDefinition = n
		}
	}
}

// WithLogger sets the logger used for load progress.
func WithLogger(logger *logging.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader reading every entry with the default limits.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		maxWord:       DefaultMaxWord,
		maxDefinition: DefaultMaxDefinition,
		logger:        logging.Discard(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load appends the entries read from r to store.
//
// The returned Stats are valid even when an error is returned; they count
// what was appended before the failure.
func (l *Loader) Load(ctx context.Context, r io.Reader, store *dictionary.Store) (Stats, error) {
	var stats Stats
	lines := newLineReader(r)

	first, ok, err := l.seekFirst(lines)
	if err != nil || !ok {
		return stats, err
	}

	line := first
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		def, err := l.readDefinition(lines, line, &stats)
		if err != nil {
			return stats, err
		}

		done := false
		if word, ok := headword(def); ok {
			done = l.lastWord != "" && word == l.lastWord

			if len(word) >= l.maxWord {
				stats.Skipped++
				l.logger.Debugf("skipped headword of %d bytes", len(word))
			} else {
				store.Append(word, def)
				stats.Loaded++
			}
		}
		if done {
			break
		}

		next, ok, err := nextEntryLine(lines)
		if err != nil {
			return stats, err
		}
		if !ok {
			break
		}
		line = next
	}

	l.logger.Infof("loaded %d definitions, skipped: %d, truncated: %d, longest: %d",
		stats.Loaded, stats.Skipped, stats.Truncated, stats.Longest)
	return stats, nil
}

// seekFirst returns the first line of the first entry to load. Without a
// first word, text holding no entries at all is not an error.
func (l *Loader) seekFirst(lines *lineReader) (string, bool, error) {
	for {
		line, ok, err := lines.next()
		if err != nil {
			return "", false, err
		}
		if !ok {
			if l.firstWord == "" {
				return "", false, nil
			}
			return "", false, fmt.Errorf("%w: %q", ErrFirstWordNotFound, l.firstWord)
		}

		if l.firstWord == "" {
			if _, ok := headword(line); ok {
				return line, true, nil
			}
			continue
		}
		if strings.HasPrefix(line, l.firstWord+",") {
			return line, true, nil
		}
	}
}

// readDefinition collects the paragraph that starts with first, without its
// final newline. Lines that would take the definition to maxDefinition or
// beyond are dropped, but still count towards Longest.
func (l *Loader) readDefinition(lines *lineReader, first string, stats *Stats) (string, error) {
	var def strings.Builder
	length := len(first) + 1
	def.WriteString(first)
	def.WriteByte('\n')

	for {
		line, ok, err := lines.next()
		if err != nil {
			return "", err
		}
		if !ok || line == "" {
			break
		}

		if length+len(line)+1 < l.maxDefinition {
			def.WriteString(line)
			def.WriteByte('\n')
		}
		length += len(line) + 1
	}

	if length > stats.Longest {
		stats.Longest = length
	}
	if length > def.Len() {
		stats.Truncated++
	}
	return strings.TrimSuffix(def.String(), "\n"), nil
}

// headword returns the text before the first comma of def.
func headword(def string) (string, bool) {
	i := strings.IndexByte(def, ',')
	if i <= 0 || strings.ContainsRune(def[:i], '\n') {
		return "", false
	}
	return def[:i], true
}

// nextEntryLine skips blank lines and returns the first line of the next paragraph.
func nextEntryLine(lines *lineReader) (string, bool, error) {
	for {
		line, ok, err := lines.next()
		if err != nil || !ok {
			return "", false, err
		}
		if line != "" {
			return line, true, nil
		}
	}
}

// lineReader yields lines with the "\n" or "\r\n" terminator removed.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (lr *lineReader) next() (string, bool, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read dictionary text: %w", err)
	}
	if line == "" && err != nil {
		return "", false, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
