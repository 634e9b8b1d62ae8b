package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-slp-stats/internal/matchset"
	"github.com/pable/go-slp-stats/internal/melee"
	"github.com/pable/go-slp-stats/internal/parser"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List every record in a directory, before filtering",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	dir := inputDir(args)
	records, err := parser.ParseDir(cmd.Context(), dir, cfg.Input.Extension)
	if err != nil {
		return fmt.Errorf("parse records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stdout, "No %s records found in %s.\n", cfg.Input.Extension, dir)
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-24s  %-20s  %-7s  %s\n",
		"HASH", "FILE", "STAGE", "PORTS", "PLAYERS")
	fmt.Fprintf(os.Stdout, "%-14s  %-24s  %-20s  %-7s  %s\n",
		"──────────────", "────────────────────────", "────────────────────", "───────", "───────")
	for _, r := range records {
		players := ""
		for i, p := range r.Settings.Players {
			if i > 0 {
				players += " vs "
			}
			players += melee.CharacterName(p.CharacterID)
		}
		fmt.Fprintf(os.Stdout, "%-14s  %-24s  %-20s  %-7s  %s\n",
			r.Hash[:12], filepath.Base(r.FilePath), melee.StageName(r.Settings.StageID),
			matchset.PortSignature(r), players)
	}
	return nil
}
