package main

import (
	"context"
	"fmt"

	"github.com/entrhq/lexicon/pkg/chambers"
	"github.com/entrhq/lexicon/pkg/config"
	"github.com/entrhq/lexicon/pkg/dictionary"
	"github.com/entrhq/lexicon/pkg/logging"
	"github.com/spf13/cobra"
)

// app carries the flags and the state built from them in PersistentPreRunE
type app struct {
	configPath string
	source     string
	firstWord  string
	lastWord   string
	logDir     string

	cfg    *config.Config
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Query Chambers's Twentieth Century Dictionary",
		Long: `lexicon loads entries from Chambers's Twentieth Century Dictionary
(Project Gutenberg text) into memory and answers queries about them.

Words ending in '*' match every entry with that prefix.

Run without a subcommand to start the interactive interpreter.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (default ~/.lexicon/config.yaml)")
	flags.StringVar(&a.source, "source", "", "dictionary text, URL or file (overrides config)")
	flags.StringVar(&a.firstWord, "first", "", "first headword to load (overrides config)")
	flags.StringVar(&a.lastWord, "last", "", "last headword to load (overrides config)")
	flags.StringVar(&a.logDir, "log-dir", "", "directory for log files (default ~/.lexicon/logs)")

	rootCmd.AddCommand(
		newReplCmd(a),
		newBrowseCmd(a),
		newLookupCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logDir != "" {
		a.logger, err = logging.NewLoggerAt(a.logDir, "cli")
	} else {
		a.logger, err = logging.NewLogger("cli")
	}
	if err != nil {
		// the fallback logger writes to stderr; carry on with it
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	level, err := logging.ParseLevel(cfg.Interface.GetLogLevel())
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		a.logger.Close()
	}
}

// loadStore builds a store from the configured source, with flags taking
// precedence over the configuration file.
func (a *app) loadStore(ctx context.Context, cmd *cobra.Command) (*dictionary.Store, error) {
	location, first, last := a.cfg.Source.Get()
	if a.source != "" {
		location = a.source
	}
	if cmd.Flags().Changed("first") {
		first = a.firstWord
	}
	if cmd.Flags().Changed("last") {
		last = a.lastWord
	}
	maxWord, maxDef := a.cfg.Limits.Get()

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "Opening %s\n", location)
	fmt.Fprintf(out, "...Loading definitions from '%s' to '%s'\n", first, last)

	store := dictionary.NewStore()
	stats, err := chambers.LoadSource(ctx, location, store,
		chambers.WithRange(first, last),
		chambers.WithMaxWord(maxWord),
		chambers.WithMaxDefinition(maxDef),
		chambers.WithLogger(a.logger.With("chambers")),
	)
	if err != nil {
		a.logger.Errorf("loading %s: %v", location, err)
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	fmt.Fprintf(out, "...Loaded %d definitions, skipped: %d, truncated: %d, longest: %d\n",
		stats.Loaded, stats.Skipped, stats.Truncated, stats.Longest)
	if stats.Loaded == 0 {
		return nil, fmt.Errorf("no definitions loaded from %s", location)
	}
	return store, nil
}
