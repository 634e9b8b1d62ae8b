package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/pable/go-slp-stats/internal/aggregator"
	"github.com/pable/go-slp-stats/internal/highlight"
	"github.com/pable/go-slp-stats/internal/narrative"
	"github.com/pable/go-slp-stats/internal/outcome"
)

func num(v float64) *float64 { return &v }

func stat(dir aggregator.Direction, a, b *float64) aggregator.StatOutput {
	text := func(v *float64) string {
		if v == nil {
			return aggregator.NA
		}
		return "x"
	}
	return aggregator.StatOutput{
		ID: "s", Name: "Stat", Type: aggregator.TypeNumber, BetterDirection: dir,
		Results: []aggregator.StatResult{
			{Port: 1, Simple: aggregator.Simple{Text: text(a), Number: a}},
			{Port: 2, Simple: aggregator.Simple{Text: text(b), Number: b}},
		},
	}
}

func TestBetterIndex(t *testing.T) {
	is := is.New(t)
	is.Equal(betterIndex(stat(aggregator.BetterHigher, num(3), num(1))), 0)
	is.Equal(betterIndex(stat(aggregator.BetterLower, num(3), num(1))), 1)
	is.Equal(betterIndex(stat(aggregator.BetterLower, num(2), num(2))), -1)
	is.Equal(betterIndex(stat(aggregator.BetterHigher, nil, num(1))), -1)
	is.Equal(betterIndex(stat(aggregator.BetterNone, num(3), num(1))), -1)
}

func TestPrintStatTable(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	s := stat(aggregator.BetterHigher, num(3), num(1))
	s.Name = "Neutral Wins"
	PrintStatTable(&buf, []aggregator.StatOutput{s})

	out := buf.String()
	is.True(strings.Contains(out, "PORT 1"))
	is.True(strings.Contains(out, "Neutral Wins"))
	is.True(strings.Contains(out, "* x"))
}

func TestPrintGamesTable(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	PrintGamesTable(&buf, []narrative.Game{{
		Stage: narrative.Stage{ID: 31, Name: "Battlefield"},
		Players: []narrative.Player{
			{Port: 1, CharacterName: "Fox", CharacterColorName: "Red", Outcome: outcome.Winner},
			{Port: 2, CharacterName: "Falco", CharacterColorName: "Default", Nametag: "BBB", Outcome: outcome.Loser},
		},
		Duration: "2:05",
	}})

	out := buf.String()
	is.True(strings.Contains(out, "Battlefield"))
	is.True(strings.Contains(out, "P1 Fox (Red)"))
	is.True(strings.Contains(out, "BBB"))
	is.True(strings.Contains(out, "2:05"))
}

func TestPrintHighlightTable(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	PrintHighlightTable(&buf, []highlight.Record{
		{Name: "Openings / Kill", Type: aggregator.TypeNumber, Rounding: 1, Results: []highlight.Value{
			{Port: 1, Type: aggregator.TypeNumber, Number: num(3.24)},
			{Port: 2, Type: aggregator.TypeNumber},
		}},
	})
	out := buf.String()
	is.True(strings.Contains(out, "3.2"))
	is.True(strings.Contains(out, aggregator.NA))
}
