package aggregator

import (
	"github.com/samber/lo"

	"github.com/pable/go-slp-stats/internal/model"
)

// CombineRatios sums counts and totals across matches. The combined ratio is a
// weighted average (Σcount / Σtotal), not the mean of per-match ratios, and is
// nil when the summed total is zero.
func CombineRatios(obs []model.RatioObservation) model.Ratio {
	r := model.Ratio{
		Count: lo.SumBy(obs, func(o model.RatioObservation) float64 { return o.Count }),
		Total: lo.SumBy(obs, func(o model.RatioObservation) float64 { return o.Total }),
	}
	if r.Total > 0 {
		v := r.Count / r.Total
		r.Value = &v
	}
	return r
}
