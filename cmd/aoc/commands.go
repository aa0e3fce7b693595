package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2019/puzzle"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered solutions and their default inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, s := range puzzle.Solutions() {
				fmt.Fprintf(out, "%-7s %-20s %s\n", s.Name, s.DefaultInput, s.Description)
			}
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Solve one puzzle part and print the answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := puzzle.Lookup(args[0])
			if err != nil {
				return err
			}
			res, err := a.runner.Run(cmd.Context(), s, a.input(s, input))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "input path or URL (default: the solution's own input)")

	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every part whose input is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			failed := 0
			for _, s := range puzzle.Solutions() {
				url := a.input(s, "")
				if !a.runner.Loader.Exists(ctx, url) {
					a.runner.Logger.Info("input missing, skipped",
						slog.String("solution", s.Name), slog.String("input", url))
					continue
				}
				res, err := a.runner.Run(ctx, s, url)
				if err != nil {
					fmt.Fprintf(out, "%s: error: %v\n", s.Name, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", s.Name, res.String())
			}
			if failed > 0 {
				return fmt.Errorf("%d solution(s) failed", failed)
			}
			return nil
		},
	}
}
