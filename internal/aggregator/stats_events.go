package aggregator

import (
	"sort"

	"github.com/samber/lo"

	"github.com/pable/go-slp-stats/internal/model"
)

// topN is how many extremal events a result keeps.
const topN = 5

// endedStocks collects the stocks matching keep that were lost, across all matches.
func endedStocks(matches []*model.MatchRecord, keep func(model.Stock) bool) []model.Stock {
	return lo.FlatMap(matches, func(m *model.MatchRecord, _ int) []model.Stock {
		return lo.Filter(m.Stats.Stocks, func(s model.Stock, _ int) bool {
			return s.Ended() && keep(s)
		})
	})
}

func earliestKills(matches []*model.MatchRecord, o model.Orientation, digits int) (any, Simple) {
	stocks := endedStocks(matches, func(s model.Stock) bool { return s.PlayerIndex != o.Subject })
	sort.SliceStable(stocks, func(i, j int) bool {
		return *stocks[i].EndPercent < *stocks[j].EndPercent
	})
	return extremalStocks(stocks, digits)
}

func latestDeaths(matches []*model.MatchRecord, o model.Orientation, digits int) (any, Simple) {
	stocks := endedStocks(matches, func(s model.Stock) bool { return s.PlayerIndex == o.Subject })
	sort.SliceStable(stocks, func(i, j int) bool {
		return *stocks[i].EndPercent > *stocks[j].EndPercent
	})
	return extremalStocks(stocks, digits)
}

func extremalStocks(ordered []model.Stock, digits int) (any, Simple) {
	top := lo.Subset(ordered, 0, topN)
	if len(top) == 0 {
		return []model.Stock{}, naSimple()
	}
	return top, numberSimple(*top[0].EndPercent, digits)
}

func highDamagePunishes(matches []*model.MatchRecord, o model.Orientation, digits int) (any, Simple) {
	punishes := lo.FlatMap(matches, func(m *model.MatchRecord, _ int) []model.Conversion {
		return lo.Filter(m.Stats.Conversions, func(c model.Conversion, _ int) bool {
			return c.PlayerIndex == o.Subject && c.EndPercent != nil
		})
	})
	sort.SliceStable(punishes, func(i, j int) bool {
		return punishes[i].Damage() > punishes[j].Damage()
	})

	top := lo.Subset(punishes, 0, topN)
	if len(top) == 0 {
		return []model.Conversion{}, naSimple()
	}
	return top, numberSimple(top[0].Damage(), digits)
}

// selfDestructs counts, per match, the subject's lost stocks minus the opponent's
// kill conversions, and sums the result. Per-match values may be negative and
// are not clamped.
func selfDestructs(matches []*model.MatchRecord, o model.Orientation, digits int) (any, Simple) {
	total := lo.SumBy(matches, func(m *model.MatchRecord) int {
		lost := lo.CountBy(m.Stats.Stocks, func(s model.Stock) bool {
			return s.PlayerIndex == o.Subject && s.Ended()
		})
		killed := lo.CountBy(m.Stats.Conversions, func(c model.Conversion) bool {
			return c.PlayerIndex != o.Subject && c.DidKill
		})
		return lost - killed
	})
	return total, numberSimple(float64(total), digits)
}
