package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/synonet/engine"
)

func cobraArgs(q query) cobra.PositionalArgs {
	switch {
	case q.maxArgs < 0:
		return cobra.MinimumNArgs(q.minArgs)
	case q.minArgs == q.maxArgs:
		return cobra.ExactArgs(q.minArgs)
	default:
		return cobra.RangeArgs(q.minArgs, q.maxArgs)
	}
}

// newQueryCmd wraps q as a one-shot command that loads the sources and runs once.
func newQueryCmd(a *app, q query) *cobra.Command {
	return &cobra.Command{
		Use:   q.usage(),
		Short: q.short,
		Args:  cobraArgs(q),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuery(cmd, q, args)
		},
	}
}

func (a *app) runQuery(cmd *cobra.Command, q query, args []string, opts ...engine.Option) error {
	e, err := a.load(cmd.Context(), opts...)
	if err != nil {
		return err
	}
	return q.run(e, newPrinter(cmd.OutOrStdout(), a.jsonOut), normalizeWords(args))
}

func newSynonymsCmd(a *app) *cobra.Command {
	var between bool
	cmd := &cobra.Command{
		Use:   "synonyms WORD... | synonyms --between A B",
		Short: synonymsQuery.short,
		Long: `Samples up to synonyms.cap neighbors for every word of a path, skipping
words already on the path. The path is either given explicitly or, with
--between, the shortest path from A to B.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !between {
				return a.runQuery(cmd, synonymsQuery, args)
			}
			if !betweenQuery.arityOK(len(args)) {
				return fmt.Errorf("--between accepts 2 arg(s), received %d", len(args))
			}
			return a.runQuery(cmd, betweenQuery, args)
		},
	}
	cmd.Flags().BoolVar(&between, "between", false, "use the shortest path between two words")
	return cmd
}

func newWalkCmd(a *app) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   walkQuery.usage(),
		Short: walkQuery.short,
		Long: `Draws a random chain of DEPTH+1 distinct words starting at WORD, each
consecutive pair joined by a synonym edge. Dead ends restart the walk, up to
walk.max_attempts times.`,
		Args: cobraArgs(walkQuery),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []engine.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, engine.WithWalkSeed(seed))
			}
			return a.runQuery(cmd, walkQuery, args, opts...)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed the walk for reproducible output")
	return cmd
}
