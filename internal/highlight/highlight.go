// Package highlight picks a short recap out of the full stat catalogue output.
package highlight

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/pable/go-slp-stats/internal/aggregator"
)

// Options controls which stats make the recap.
type Options struct {
	// Fixed stats always appear, in this order.
	Fixed []string
	// RandomCount more stats are drawn from the rest of the catalogue.
	RandomCount int
	// SelfDestructThreshold: self-destructs are eligible for the draw only when
	// some player's count exceeds it.
	SelfDestructThreshold float64
}

// DefaultOptions returns the standard recap layout.
func DefaultOptions() Options {
	return Options{
		Fixed: []string{
			aggregator.KillMoves,
			aggregator.NeutralOpenerMoves,
			aggregator.OpeningsPerKill,
			aggregator.DamageDone,
		},
		RandomCount:           2,
		SelfDestructThreshold: 1,
	}
}

// Value is a bare simple value: the number for numeric stats, the text otherwise.
type Value struct {
	Port   int
	Type   aggregator.ValueType
	Text   string
	Number *float64
}

func (v Value) bare() any {
	if v.Type == aggregator.TypeText {
		return v.Text
	}
	return v.Number
}

func (v Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.bare()) }

func (v Value) MarshalYAML() (any, error) { return v.bare(), nil }

// String renders the value for display.
func (v Value) String() string {
	if v.Type == aggregator.TypeText {
		return v.Text
	}
	if v.Number == nil {
		return aggregator.NA
	}
	return fmt.Sprintf("%g", *v.Number)
}

// Record is a stat output whose results are reduced to bare values.
type Record struct {
	ID              string               `json:"id" yaml:"id"`
	Name            string               `json:"name" yaml:"name"`
	Type            aggregator.ValueType `json:"type" yaml:"type"`
	BetterDirection aggregator.Direction `json:"betterDirection,omitempty" yaml:"betterDirection,omitempty"`
	Rounding        int                  `json:"recommendedRounding" yaml:"recommendedRounding"`
	Results         []Value              `json:"results" yaml:"results"`
}

func project(s aggregator.StatOutput) Record {
	return Record{
		ID:              s.ID,
		Name:            s.Name,
		Type:            s.Type,
		BetterDirection: s.BetterDirection,
		Rounding:        s.Rounding,
		Results: lo.Map(s.Results, func(r aggregator.StatResult, _ int) Value {
			return Value{Port: r.Port, Type: s.Type, Text: r.Simple.Text, Number: r.Simple.Number}
		}),
	}
}

// Compose returns the fixed stats followed by RandomCount stats drawn from the
// rest of summary. Self-destructs only enter the draw when some orientation's
// count exceeds the threshold.
func Compose(summary []aggregator.StatOutput, opts Options, rng Rand) ([]Record, error) {
	byID := lo.KeyBy(summary, func(s aggregator.StatOutput) string { return s.ID })

	out := make([]Record, 0, len(opts.Fixed)+opts.RandomCount)
	for _, id := range opts.Fixed {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("highlight: unknown stat %q", id)
		}
		out = append(out, project(s))
	}

	includeSDs := false
	if sd, ok := byID[aggregator.SelfDestructs]; ok {
		includeSDs = lo.SomeBy(sd.Results, func(r aggregator.StatResult) bool {
			return r.Simple.Number != nil && *r.Simple.Number > opts.SelfDestructThreshold
		})
	}

	eligible := lo.Filter(summary, func(s aggregator.StatOutput, _ int) bool {
		if lo.Contains(opts.Fixed, s.ID) {
			return false
		}
		return s.ID != aggregator.SelfDestructs || includeSDs
	})
	for _, s := range ChooseRandom(eligible, opts.RandomCount, rng) {
		out = append(out, project(s))
	}
	return out, nil
}
