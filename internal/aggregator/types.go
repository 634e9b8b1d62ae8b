// Package aggregator computes the head-to-head stat catalogue over a filtered
// set of singles matches.
package aggregator

import (
	"strconv"

	"github.com/pable/go-slp-stats/internal/model"
)

// ValueType says which half of a Simple value a stat is read through.
type ValueType string

const (
	TypeNumber ValueType = "number"
	TypeText   ValueType = "text"
)

// Direction says whether a larger number is better.
type Direction string

const (
	BetterHigher Direction = "higher"
	BetterLower  Direction = "lower"
	BetterNone   Direction = ""
)

// NA is the text rendered for an undefined value.
const NA = "N/A"

// Simple is the compact projection of a stat result. Number is nil when the
// quantity is undefined or the stat is text-only.
type Simple struct {
	Text   string   `json:"text" yaml:"text"`
	Number *float64 `json:"number" yaml:"number"`
}

// StatResult is one stat evaluated for one orientation.
type StatResult struct {
	Port   int    `json:"port" yaml:"port"`
	Result any    `json:"result" yaml:"result"`
	Simple Simple `json:"simple" yaml:"simple"`
}

// StatOutput is a definition together with its per-orientation results.
type StatOutput struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Type            ValueType    `json:"type" yaml:"type"`
	BetterDirection Direction    `json:"betterDirection,omitempty" yaml:"betterDirection,omitempty"`
	Rounding        int          `json:"recommendedRounding" yaml:"recommendedRounding"`
	Results         []StatResult `json:"results" yaml:"results"`
}

// MoveCount is how often a move ended (or opened) a conversion.
type MoveCount struct {
	Count     int    `json:"count" yaml:"count"`
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	ShortName string `json:"shortName" yaml:"shortName"`
}

func naSimple() Simple {
	return Simple{Text: NA}
}

func numberSimple(v float64, digits int) Simple {
	return Simple{Text: strconv.FormatFloat(v, 'f', digits, 64), Number: &v}
}

// ratioSimple renders the combined ratio, or N/A when it is undefined.
func ratioSimple(r model.Ratio, digits int) Simple {
	if r.Value == nil {
		return naSimple()
	}
	return numberSimple(*r.Value, digits)
}

// countSimple renders the summed count.
func countSimple(r model.Ratio, digits int) Simple {
	return numberSimple(r.Count, digits)
}
