package aggregator

import (
	"fmt"

	"github.com/pable/go-slp-stats/internal/model"
)

// Stat IDs, in catalogue order.
const (
	OpeningsPerKill    = "openingsPerKill"
	DamagePerOpening   = "damagePerOpening"
	NeutralWins        = "neutralWins"
	KillMoves          = "killMoves"
	NeutralOpenerMoves = "neutralOpenerMoves"
	EarlyKills         = "earlyKills"
	LateDeaths         = "lateDeaths"
	SelfDestructs      = "selfDestructs"
	InputsPerMinute    = "inputsPerMinute"
	AvgKillPercent     = "avgKillPercent"
	HighDamagePunishes = "highDamagePunishes"
	DamageDone         = "damageDone"
)

// ComputeFunc evaluates a stat over the match set for one orientation.
// digits is the definition's rounding for the simple rendering.
type ComputeFunc func(matches []*model.MatchRecord, o model.Orientation, digits int) (result any, simple Simple)

// Definition describes one stat. Definitions are stateless.
type Definition struct {
	ID              string
	Name            string
	Type            ValueType
	BetterDirection Direction
	Rounding        int
	compute         ComputeFunc
}

// Compute evaluates the definition for one orientation. The returned result is
// not yet tagged with a port.
func (d Definition) Compute(matches []*model.MatchRecord, o model.Orientation) StatResult {
	result, simple := d.compute(matches, o, d.Rounding)
	return StatResult{Result: result, Simple: simple}
}

var catalogue = mustCatalogue(
	Definition{
		ID: OpeningsPerKill, Name: "Openings / Kill", Type: TypeNumber,
		BetterDirection: BetterLower, Rounding: 1,
		compute: overallRatio(openingsPerKill, ratioSimple),
	},
	Definition{
		ID: DamagePerOpening, Name: "Damage / Opening", Type: TypeNumber,
		BetterDirection: BetterHigher, Rounding: 1,
		compute: overallRatio(damagePerOpening, ratioSimple),
	},
	Definition{
		ID: NeutralWins, Name: "Neutral Wins", Type: TypeNumber,
		BetterDirection: BetterHigher, Rounding: 0,
		compute: overallRatio(neutralWinRatio, countSimple),
	},
	Definition{
		ID: KillMoves, Name: "Most Common Kill Move", Type: TypeText,
		compute: mostCommonMove(killMove),
	},
	Definition{
		ID: NeutralOpenerMoves, Name: "Most Common Neutral Opener", Type: TypeText,
		compute: mostCommonMove(neutralOpener),
	},
	Definition{
		ID: EarlyKills, Name: "Earliest Kill", Type: TypeNumber,
		BetterDirection: BetterLower, Rounding: 1,
		compute: earliestKills,
	},
	Definition{
		ID: LateDeaths, Name: "Latest Death", Type: TypeNumber,
		BetterDirection: BetterHigher, Rounding: 1,
		compute: latestDeaths,
	},
	Definition{
		ID: SelfDestructs, Name: "Total Self-Destructs", Type: TypeNumber,
		BetterDirection: BetterLower, Rounding: 0,
		compute: selfDestructs,
	},
	Definition{
		ID: InputsPerMinute, Name: "Inputs / Minute", Type: TypeNumber,
		BetterDirection: BetterHigher, Rounding: 1,
		compute: overallRatio(inputsPerMinute, ratioSimple),
	},
	Definition{
		ID: AvgKillPercent, Name: "Average Kill Percent", Type: TypeNumber,
		BetterDirection: BetterLower, Rounding: 1,
		compute: averageKillPercent,
	},
	Definition{
		ID: HighDamagePunishes, Name: "Highest Damage Punish", Type: TypeNumber,
		BetterDirection: BetterHigher, Rounding: 1,
		compute: highDamagePunishes,
	},
	Definition{
		ID: DamageDone, Name: "Total Damage Done", Type: TypeNumber,
		BetterDirection: BetterHigher, Rounding: 1,
		compute: overallRatio(damagePerOpening, countSimple),
	},
)

func mustCatalogue(defs ...Definition) []Definition {
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.ID == "" || d.compute == nil {
			panic(fmt.Sprintf("aggregator: incomplete stat definition %q", d.ID))
		}
		if seen[d.ID] {
			panic(fmt.Sprintf("aggregator: duplicate stat definition %q", d.ID))
		}
		seen[d.ID] = true
	}
	return defs
}

// Catalogue returns the stat definitions in their fixed order. The slice is a
// copy; callers may not alter the catalogue.
func Catalogue() []Definition {
	return append([]Definition(nil), catalogue...)
}

// Lookup returns the definition with the given ID.
func Lookup(id string) (Definition, bool) {
	for _, d := range catalogue {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Output strips the compute function and attaches results.
func (d Definition) Output(results []StatResult) StatOutput {
	return StatOutput{
		ID:              d.ID,
		Name:            d.Name,
		Type:            d.Type,
		BetterDirection: d.BetterDirection,
		Rounding:        d.Rounding,
		Results:         results,
	}
}
