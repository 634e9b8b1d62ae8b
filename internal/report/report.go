package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-slp-stats/internal/aggregator"
	"github.com/pable/go-slp-stats/internal/highlight"
	"github.com/pable/go-slp-stats/internal/matchset"
	"github.com/pable/go-slp-stats/internal/narrative"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintMatchSetSummary prints a one-line header for the filtered set.
func PrintMatchSetSummary(w io.Writer, res matchset.Result) {
	fmt.Fprintf(w, "\nPorts: %s  |  Games: %d  |  Excluded: %d\n\n",
		res.Signature, len(res.Matches), len(res.Excluded))
}

// PrintExclusions lists the matches dropped by the filter, if any.
func PrintExclusions(w io.Writer, excluded []matchset.Exclusion) {
	if len(excluded) == 0 {
		return
	}
	table := newTable(w)
	table.Header("FILE", "REASON")
	for _, e := range excluded {
		table.Append(e.Match.FilePath, e.Reason)
	}
	table.Render()
}

// PrintGamesTable prints one row per game in narrative order.
func PrintGamesTable(w io.Writer, games []narrative.Game) {
	table := newTable(w)
	table.Header("#", "STAGE", "PLAYER", "RESULT", "PLAYER", "RESULT", "DURATION", "START")

	for i, g := range games {
		row := []any{strconv.Itoa(i + 1), g.Stage.Name}
		for _, p := range g.Players {
			row = append(row, playerLabel(p), string(p.Outcome))
		}
		start := "—"
		if !g.StartTime.IsZero() {
			start = g.StartTime.Format("2006-01-02 15:04")
		}
		row = append(row, g.Duration, start)
		table.Append(row...)
	}
	table.Render()
}

func playerLabel(p narrative.Player) string {
	label := fmt.Sprintf("P%d %s (%s)", p.Port, p.CharacterName, p.CharacterColorName)
	if p.Nametag != "" {
		label += " " + p.Nametag
	}
	return label
}

// PrintStatTable prints every stat with one column per player. The better
// value of a directional stat is marked with "*".
func PrintStatTable(w io.Writer, stats []aggregator.StatOutput) {
	if len(stats) == 0 {
		return
	}
	table := newTable(w)
	header := []any{"STAT"}
	for _, r := range stats[0].Results {
		header = append(header, fmt.Sprintf("PORT %d", r.Port))
	}
	table.Header(header...)

	for _, s := range stats {
		best := betterIndex(s)
		row := []any{s.Name}
		for i, r := range s.Results {
			cell := r.Simple.Text
			if i == best {
				cell = "* " + cell
			}
			row = append(row, cell)
		}
		table.Append(row...)
	}
	table.Render()
}

// betterIndex returns the index of the strictly better result, or -1 when the
// stat has no direction, a value is undefined, or the values tie.
func betterIndex(s aggregator.StatOutput) int {
	if s.BetterDirection == aggregator.BetterNone || len(s.Results) != 2 {
		return -1
	}
	a, b := s.Results[0].Simple.Number, s.Results[1].Simple.Number
	if a == nil || b == nil || *a == *b {
		return -1
	}
	aWins := *a > *b
	if s.BetterDirection == aggregator.BetterLower {
		aWins = !aWins
	}
	if aWins {
		return 0
	}
	return 1
}

// PrintHighlightTable prints the recap.
func PrintHighlightTable(w io.Writer, recs []highlight.Record) {
	if len(recs) == 0 {
		return
	}
	table := newTable(w)
	header := []any{"HIGHLIGHT"}
	for _, v := range recs[0].Results {
		header = append(header, fmt.Sprintf("PORT %d", v.Port))
	}
	table.Header(header...)

	for _, r := range recs {
		row := []any{r.Name}
		for _, v := range r.Results {
			row = append(row, formatValue(v, r.Rounding))
		}
		table.Append(row...)
	}
	table.Render()
}

func formatValue(v highlight.Value, digits int) string {
	if v.Type == aggregator.TypeText || v.Number == nil {
		return v.String()
	}
	return strconv.FormatFloat(*v.Number, 'f', digits, 64)
}

// PrintCatalogue lists the stat definitions.
func PrintCatalogue(w io.Writer, defs []aggregator.Definition) {
	table := newTable(w)
	table.Header("ID", "NAME", "TYPE", "BETTER", "ROUNDING")
	for _, d := range defs {
		better := string(d.BetterDirection)
		if better == "" {
			better = "—"
		}
		table.Append(d.ID, d.Name, string(d.Type), better, strconv.Itoa(d.Rounding))
	}
	table.Render()
}
