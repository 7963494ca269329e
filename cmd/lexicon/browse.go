package main

import (
	"github.com/entrhq/lexicon/pkg/browser"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [query]",
		Short: "Load the dictionary and browse it in a terminal UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			var opts []browser.Option
			if len(args) == 1 {
				opts = append(opts, browser.WithQuery(args[0]))
			}
			return browser.Run(store, opts...)
		},
	}
}
