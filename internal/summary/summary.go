// Package summary runs the full head-to-head pipeline over a filtered match set.
package summary

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pable/go-slp-stats/internal/aggregator"
	"github.com/pable/go-slp-stats/internal/highlight"
	"github.com/pable/go-slp-stats/internal/model"
	"github.com/pable/go-slp-stats/internal/narrative"
)

// Output is everything produced for one match set.
type Output struct {
	Games      []narrative.Game        `json:"games" yaml:"games"`
	Summary    []aggregator.StatOutput `json:"summary" yaml:"summary"`
	BtsSummary []highlight.Record      `json:"btsSummary" yaml:"btsSummary"`
}

// Generate computes the narrative, the full stat summary and the recap for a
// set that has already been through matchset.Filter.
func Generate(matches []*model.MatchRecord, opts highlight.Options, rng highlight.Rand) (*Output, error) {
	stats, err := aggregator.ComputeStats(matches)
	if err != nil {
		return nil, err
	}
	bts, err := highlight.Compose(stats, opts, rng)
	if err != nil {
		return nil, fmt.Errorf("compose highlights: %w", err)
	}
	return &Output{
		Games:      narrative.Compose(matches),
		Summary:    stats,
		BtsSummary: bts,
	}, nil
}

// Output encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode writes out in the given format.
func Encode(w io.Writer, out *Output, format string) error {
	switch format {
	case FormatJSON, "":
		return json.NewEncoder(w).Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
