package main

import (
	"fmt"
	"sort"

	"github.com/entrhq/lexicon/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write the current configuration (defaults plus any file values) to disk",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.cfg.Save(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath(a.cfg))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "# %s\n", configPath(a.cfg))
				for _, section := range a.cfg.Manager.GetSections() {
					fmt.Fprintf(out, "%s:\n", section.ID())
					data := section.Data()
					keys := make([]string, 0, len(data))
					for k := range data {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					for _, k := range keys {
						fmt.Fprintf(out, "  %s: %v\n", k, data[k])
					}
				}
			},
		},
	)

	return configCmd
}

func configPath(cfg *config.Config) string {
	if fs, ok := cfg.Manager.Store().(*config.FileStore); ok {
		return fs.Path()
	}
	return ""
}
