package main

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2019/config"
	"github.com/katalvlaran/aoc2019/puzzle"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configURL string
	logLevel  string
	root      string
	from      string
	to        string

	cfg    *config.Config
	runner *puzzle.Runner
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2019: crossed wires and orbit maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configURL, "config", "", "YAML config file (path or URL)")
	f.StringVar(&a.logLevel, "log-level", "", "override log.level: debug, info, warn or error")
	f.StringVar(&a.root, "root", "", "override orbit.root")
	f.StringVar(&a.from, "from", "", "override orbit.from")
	f.StringVar(&a.to, "to", "", "override orbit.to")

	cmd.AddCommand(newListCmd(), newRunCmd(a), newAllCmd(a))

	return cmd
}

// setup resolves the configuration (defaults < file < flags) and builds the
// logger and runner.
func (a *app) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Defaults or file
	cfg := config.Default()
	if a.configURL != "" {
		var err error
		if cfg, err = config.Load(ctx, nil, a.configURL); err != nil {
			return err
		}
	}

	// 2. Flags
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if f.Changed("root") {
		cfg.Orbit.Root = a.root
	}
	if f.Changed("from") {
		cfg.Orbit.From = a.from
	}
	if f.Changed("to") {
		cfg.Orbit.To = a.to
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 3. Runtime
	logger := cfg.NewLogger(cmd.ErrOrStderr()).With(slog.String("run_id", uuid.NewString()))
	a.cfg = cfg
	a.runner = puzzle.NewRunner(nil, logger, cfg.Params())
	logger.Debug("configured",
		slog.String("config", a.configURL),
		slog.String("root", cfg.Orbit.Root),
		slog.String("from", cfg.Orbit.From),
		slog.String("to", cfg.Orbit.To))

	return nil
}

// input picks the URL for s: flag, then config, then the solution default.
func (a *app) input(s puzzle.Solution, flag string) string {
	if flag != "" {
		return flag
	}
	if url := a.cfg.Input(s.Name); url != "" {
		return url
	}

	return s.DefaultInput
}

