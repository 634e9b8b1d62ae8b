package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-slp-stats/internal/highlight"
	"github.com/pable/go-slp-stats/internal/matchset"
	"github.com/pable/go-slp-stats/internal/parser"
	"github.com/pable/go-slp-stats/internal/report"
	"github.com/pable/go-slp-stats/internal/summary"
)

var (
	analyzeOut      string
	analyzeFormat   string
	analyzeSeed     uint64
	analyzeExt      string
	analyzeNoTables bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Compute head-to-head stats for the replays in a directory",
	Long: `Loads every exported record in dir (default: the configured input dir),
keeps the singles games that share the most common port assignment,
computes the stat catalogue for both players and writes the result.

Example:
  slpstats analyze ./replays --out set.json --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "output file (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "output format: json or yaml (overrides config)")
	analyzeCmd.Flags().Uint64Var(&analyzeSeed, "seed", 0, "seed for highlight selection; 0 picks a random seed")
	analyzeCmd.Flags().StringVar(&analyzeExt, "ext", "", "record file extension (overrides config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoTables, "no-tables", false, "only write the output file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("out") {
		cfg.Output.Path = analyzeOut
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = analyzeFormat
	}
	if cmd.Flags().Changed("seed") {
		cfg.Highlights.Seed = analyzeSeed
	}
	if cmd.Flags().Changed("ext") {
		cfg.Input.Extension = analyzeExt
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	set, err := loadMatchSet(cmd.Context(), inputDir(args))
	if err != nil {
		return err
	}

	out, err := summary.Generate(set.Matches, cfg.HighlightOptions(), highlight.NewRand(cfg.Highlights.Seed))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := writeOutput(cfg.Output.Path, cfg.Output.Format, out); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output.Path).Msg("finished writing stats")

	if !analyzeNoTables {
		report.PrintMatchSetSummary(os.Stdout, set)
		report.PrintGamesTable(os.Stdout, out.Games)
		fmt.Fprintln(os.Stdout)
		report.PrintStatTable(os.Stdout, out.Summary)
		fmt.Fprintln(os.Stdout)
		report.PrintHighlightTable(os.Stdout, out.BtsSummary)
	}
	return nil
}

func inputDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return cfg.Input.Dir
}

// loadMatchSet parses dir and filters it down to one comparable set, logging
// every exclusion.
func loadMatchSet(ctx context.Context, dir string) (matchset.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info().Str("dir", dir).Msg("reading records")
	records, err := parser.ParseDir(ctx, dir, cfg.Input.Extension)
	if err != nil {
		return matchset.Result{}, fmt.Errorf("parse records: %w", err)
	}
	log.Debug().Int("records", len(records)).Msg("parsed records")

	set, err := matchset.Filter(records)
	for _, e := range set.Excluded {
		log.Warn().Str("file", e.Match.FilePath).Str("reason", e.Reason).Msg("excluded game")
	}
	if errors.Is(err, matchset.ErrNoValidMatches) {
		return set, fmt.Errorf("%w (dir %s)", err, dir)
	}
	if err != nil {
		return set, err
	}
	log.Info().Int("games", len(set.Matches)).Str("ports", set.Signature).Msg("including games for stat calculation")
	return set, nil
}

func writeOutput(path, format string, out *summary.Output) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := summary.Encode(f, out, format); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}
