package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-slp-stats/internal/aggregator"
	"github.com/pable/go-slp-stats/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "List the stats slpstats computes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		report.PrintCatalogue(os.Stdout, aggregator.Catalogue())
	},
}
