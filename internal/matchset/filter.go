// Package matchset reduces a batch of parsed replays to one comparable set of singles
// matches and resolves the two player orientations stats are computed from.
package matchset

import (
	"errors"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/pable/go-slp-stats/internal/model"
)

// ErrNoValidMatches is returned when no singles match survives filtering.
var ErrNoValidMatches = errors.New("there were no valid games found to compute stats from")

// Exclusion reasons.
const (
	ReasonNotSingles   = "not a singles game"
	ReasonPortMismatch = "player ports differ"
)

// Exclusion records a match dropped from the set and why.
type Exclusion struct {
	Match  *model.MatchRecord
	Reason string
}

// Result is the outcome of Filter.
type Result struct {
	Matches   []*model.MatchRecord
	Excluded  []Exclusion
	Signature string // port signature shared by every match in Matches
}

// PortSignature joins the players' ports in settings order, e.g. "1-4".
// The order is not normalised: "1-4" and "4-1" are different matchups.
func PortSignature(m *model.MatchRecord) string {
	ports := lo.Map(m.Settings.Players, func(p model.PlayerInfo, _ int) string {
		return strconv.Itoa(p.Port)
	})
	return strings.Join(ports, "-")
}

// Filter keeps the largest group of singles matches sharing one port signature.
// Ties between equally sized groups go to the group whose first match appears
// earliest in the input. Every other match is reported in Excluded, non-singles
// first, each in input order.
func Filter(matches []*model.MatchRecord) (Result, error) {
	var res Result

	singles, others := lo.FilterReject(matches, func(m *model.MatchRecord, _ int) bool {
		return len(m.Settings.Players) == 2
	})
	for _, m := range others {
		res.Excluded = append(res.Excluded, Exclusion{Match: m, Reason: ReasonNotSingles})
	}

	if len(singles) == 0 {
		return res, ErrNoValidMatches
	}

	groups := lo.PartitionBy(singles, PortSignature)
	best := lo.MaxBy(groups, func(a, b []*model.MatchRecord) bool {
		return len(a) > len(b)
	})
	res.Signature = PortSignature(best[0])

	for _, g := range groups {
		if PortSignature(g[0]) == res.Signature {
			res.Matches = g
			continue
		}
		for _, m := range g {
			res.Excluded = append(res.Excluded, Exclusion{Match: m, Reason: ReasonPortMismatch})
		}
	}
	return res, nil
}
