package aggregator

import (
	"github.com/samber/lo"

	"github.com/pable/go-slp-stats/internal/model"
)

// overallField reads one precomputed ratio from a player's overall stats row.
type overallField func(model.OverallStats) model.RatioObservation

func openingsPerKill(o model.OverallStats) model.RatioObservation  { return o.OpeningsPerKill }
func damagePerOpening(o model.OverallStats) model.RatioObservation { return o.DamagePerOpening }
func neutralWinRatio(o model.OverallStats) model.RatioObservation  { return o.NeutralWinRatio }
func inputsPerMinute(o model.OverallStats) model.RatioObservation  { return o.InputsPerMinute }

// overallRatio combines field across every match the subject has an overall row in.
func overallRatio(field overallField, project func(model.Ratio, int) Simple) ComputeFunc {
	return func(matches []*model.MatchRecord, o model.Orientation, digits int) (any, Simple) {
		obs := lo.FilterMap(matches, func(m *model.MatchRecord, _ int) (model.RatioObservation, bool) {
			row, ok := m.OverallFor(o.Subject)
			if !ok {
				return model.RatioObservation{}, false
			}
			return field(row), true
		})
		r := CombineRatios(obs)
		return r, project(r, digits)
	}
}

// averageKillPercent is the mean percent the opponent's lost stocks ended at.
func averageKillPercent(matches []*model.MatchRecord, o model.Orientation, digits int) (any, Simple) {
	stocks := endedStocks(matches, func(s model.Stock) bool { return s.PlayerIndex != o.Subject })
	r := CombineRatios(lo.Map(stocks, func(s model.Stock, _ int) model.RatioObservation {
		return model.RatioObservation{Count: *s.EndPercent, Total: 1}
	}))
	return r, ratioSimple(r, digits)
}
