package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-slp-stats/internal/narrative"
	"github.com/pable/go-slp-stats/internal/report"
)

var gamesCmd = &cobra.Command{
	Use:   "games [dir]",
	Short: "List the games that would be included in the stats",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGames,
}

func runGames(cmd *cobra.Command, args []string) error {
	set, err := loadMatchSet(cmd.Context(), inputDir(args))
	if err != nil {
		return err
	}
	report.PrintMatchSetSummary(os.Stdout, set)
	report.PrintGamesTable(os.Stdout, narrative.Compose(set.Matches))
	report.PrintExclusions(os.Stdout, set.Excluded)
	return nil
}
