package main

import (
	"github.com/entrhq/lexicon/pkg/interpreter"
	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Load the dictionary and start the command interpreter",
		Long: `Starts the interactive interpreter. Commands:

  #word or #prefix*   count matching entries
  =word or =prefix*   list matching words
  ?word or ?prefix*   list matching definitions
  ~pattern            list words matching a glob pattern
  quit                exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd)
		},
	}
}

func (a *app) runRepl(cmd *cobra.Command) error {
	store, err := a.loadStore(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	in := interpreter.New(store,
		interpreter.WithReader(cmd.InOrStdin()),
		interpreter.WithWriter(cmd.OutOrStdout()),
		interpreter.WithPrompt(a.cfg.Interface.GetPrompt()),
		interpreter.WithStyled(a.cfg.Interface.IsStyled()),
		interpreter.WithLogger(a.logger.With("interpreter")),
	)
	return in.Run(cmd.Context())
}
