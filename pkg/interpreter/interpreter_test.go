package interpreter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/entrhq/lexicon/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *dictionary.Store {
	s := dictionary.NewStore()
	s.Append("name1", "value1")
	s.Append("name2", "value2.1")
	s.Append("name2", "value2.2")
	s.Append("name3", "value3")
	return s
}

func run(t *testing.T, input string) string {
	t.Helper()

	var out bytes.Buffer
	in := New(newTestStore(), WithReader(strings.NewReader(input)), WithWriter(&out))
	require.NoError(t, in.Run(context.Background()))
	return out.String()
}

func execute(t *testing.T, line string) (string, bool) {
	t.Helper()

	var out bytes.Buffer
	in := New(newTestStore(), WithWriter(&out))
	cont := in.Execute(line)
	return out.String(), cont
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     string
		wantMore bool
	}{
		{name: "count exact", line: "#name2", want: "2\n", wantMore: true},
		{name: "count prefix", line: "#name*", want: "4\n", wantMore: true},
		{name: "count none", line: "#other", want: "0\n", wantMore: true},
		{name: "words", line: "=name2", want: "name2\nname2\n", wantMore: true},
		{name: "words prefix", line: "=name*", want: "name1\nname2\nname2\nname3\n", wantMore: true},
		{name: "definitions", line: "?name2", want: "value2.1\n\nvalue2.2\n\n", wantMore: true},
		{name: "definitions none", line: "?name4", want: "No definitions match 'name4'\n", wantMore: true},
		{name: "glob", line: "~name[13]", want: "name1\nname3\n", wantMore: true},
		{name: "glob none", line: "~x?", want: "No definitions match 'x?'\n", wantMore: true},
		{name: "quit", line: "quit", want: "Done.\n", wantMore: false},
		{name: "help", line: "what", want: helpText, wantMore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, more := execute(t, tt.line)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMore, more)
		})
	}
}

func TestExecuteInvalidGlob(t *testing.T) {
	got, more := execute(t, "~[n-")

	assert.True(t, more)
	assert.Contains(t, got, "invalid glob pattern")
}

func TestRunSession(t *testing.T) {
	out := run(t, "#name2\n?name3\nquit\n#name1\n")

	want := helpText +
		"\n> 2\n" +
		"\n> value3\n\n" +
		"\n> Done.\n"
	assert.Equal(t, want, out)
}

func TestRunEndOfInput(t *testing.T) {
	out := run(t, "=name3")

	assert.Equal(t, helpText+"\n> name3\n\n> \n", out)
}

func TestRunCustomPrompt(t *testing.T) {
	var out bytes.Buffer
	in := New(newTestStore(),
		WithReader(strings.NewReader("quit\n")),
		WithWriter(&out),
		WithPrompt("dict> "),
	)

	require.NoError(t, in.Run(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(), "\ndict> Done.\n"))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	in := New(newTestStore(), WithReader(strings.NewReader("#name1\n")), WithWriter(&out))

	assert.ErrorIs(t, in.Run(ctx), context.Canceled)
}
