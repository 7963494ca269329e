package main

import (
	"errors"
	"fmt"

	"github.com/entrhq/lexicon/pkg/dictionary"
	"github.com/spf13/cobra"
)

var errNoMatches = errors.New("no definitions match")

func newLookupCmd(a *app) *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Print the definitions of a word and exit",
		Long: `Prints every definition of word. A trailing '*' matches every
headword with that prefix. Exits non-zero when nothing matches.

Example:
  lexicon lookup SAKE
  lexicon lookup 'SAK*' --count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			return lookup(cmd, store, args[0], countOnly)
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of matches")
	return cmd
}

func lookup(cmd *cobra.Command, store *dictionary.Store, word string, countOnly bool) error {
	out := cmd.OutOrStdout()

	if countOnly {
		fmt.Fprintln(out, store.Count(word))
		return nil
	}

	found := 0
	for i := store.Find(word, 0); i != dictionary.NotFound; i = store.Find(word, i+1) {
		def, _ := store.DefinitionAt(i)
		if found > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, def)
		found++
	}

	if found == 0 {
		return fmt.Errorf("%w '%s'", errNoMatches, word)
	}
	return nil
}
