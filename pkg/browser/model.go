// Package browser is an interactive terminal view over a dictionary store.
//
// Typing a word lists the matching entries (a trailing '*' matches by
// prefix, a leading '~' switches to glob patterns); the definition of the
// selected match is shown underneath.
package browser

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/lexicon/pkg/dictionary"
)

const (
	// globPrefix switches a query from Find semantics to glob patterns
	globPrefix = "~"

	defaultWidth      = 80
	defaultHeight     = 24
	defaultListHeight = 8

	// header, input box, blank line, definition border and status line
	chromeHeight = 7
)

// Model is the Bubble Tea model of the browser.
type Model struct {
	store    *dictionary.Store
	input    textinput.Model
	viewport viewport.Model
	keys     keyMap
	copyFn   func(string) error

	query    string
	matches  []int
	selected int
	status   string
	err      error

	width      int
	height     int
	listHeight int
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the function used to copy definitions.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copyFn = fn
	}
}

// WithQuery starts the browser with a query already entered.
func WithQuery(query string) Option {
	return func(m *Model) {
		m.input.SetValue(query)
	}
}

// New creates a browser over store
func New(store *dictionary.Store, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = "word, prefix* or ~glob"
	input.Prompt = "› "
	input.Focus()

	m := Model{
		store:      store,
		input:      input,
		viewport:   viewport.New(defaultWidth, defaultHeight-chromeHeight-defaultListHeight),
		keys:       defaultKeyMap(),
		copyFn:     clipboard.WriteAll,
		width:      defaultWidth,
		height:     defaultHeight,
		listHeight: defaultListHeight,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.search()
	return m
}

// Run starts the browser full screen and blocks until the user quits.
func Run(store *dictionary.Store, opts ...Option) error {
	p := tea.NewProgram(New(store, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copySelected()
			return m, nil
		case msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.query {
		m.search()
	}
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Chambers's Twentieth Century Dictionary"))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Width(max(m.width-4, 10)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(definitionStyle.Width(max(m.width, 10)).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// Matches returns the store indices listed for the current query
func (m Model) Matches() []int {
	return m.matches
}

// Selected returns the store index of the selected match, or
// dictionary.NotFound when nothing matches.
func (m Model) Selected() int {
	if len(m.matches) == 0 {
		return dictionary.NotFound
	}
	return m.matches[m.selected]
}

// Status returns the last status message
func (m Model) Status() string {
	return m.status
}

func (m *Model) search() {
	m.query = m.input.Value()
	m.selected = 0
	m.matches = nil
	m.err = nil
	m.status = ""

	switch {
	case m.query == "":
	case strings.HasPrefix(m.query, globPrefix):
		m.matches, m.err = m.store.GlobAll(strings.TrimPrefix(m.query, globPrefix))
	default:
		m.matches = m.store.FindAll(m.query)
	}

	if m.query != "" && m.err == nil {
		m.status = fmt.Sprintf("%d matches", len(m.matches))
	}
	m.showSelected()
}

func (m *Model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.matches)) % len(m.matches)
	m.showSelected()
}

func (m *Model) showSelected() {
	def, _ := m.store.DefinitionAt(m.Selected())
	m.viewport.SetContent(def)
	m.viewport.GotoTop()
}

func (m *Model) copySelected() {
	def, ok := m.store.DefinitionAt(m.Selected())
	if !ok {
		m.status = "nothing to copy"
		return
	}
	if err := m.copyFn(def); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	word, _ := m.store.WordAt(m.Selected())
	m.status = fmt.Sprintf("copied definition of %s", word)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.listHeight = defaultListHeight
	if height < chromeHeight+2*defaultListHeight {
		m.listHeight = max((height-chromeHeight)/2, 1)
	}

	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight-m.listHeight, 1)
}

// renderList shows a window of matches that keeps the selection visible.
func (m Model) renderList() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if len(m.matches) == 0 {
		if m.query == "" {
			return statusStyle.Render(fmt.Sprintf("%d entries loaded", m.store.Size()))
		}
		return errorStyle.Render(fmt.Sprintf("No definitions match '%s'", m.query))
	}

	start := 0
	if m.selected >= m.listHeight {
		start = m.selected - m.listHeight + 1
	}
	end := min(start+m.listHeight, len(m.matches))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		word, _ := m.store.WordAt(m.matches[i])
		if i == m.selected {
			lines = append(lines, selectedStyle.Render("▸ "+word))
		} else {
			lines = append(lines, wordStyle.Render("  "+word))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	parts := []string{m.keys.helpLine()}
	if m.status != "" {
		parts = append([]string{m.status}, parts...)
	}
	return statusStyle.Render(strings.Join(parts, " • "))
}
