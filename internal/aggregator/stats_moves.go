package aggregator

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/pable/go-slp-stats/internal/melee"
	"github.com/pable/go-slp-stats/internal/model"
)

// movePicker returns the move of interest for a conversion, if the conversion
// qualifies for the subject.
type movePicker func(c model.Conversion, subject int) (model.Move, bool)

// killMove is the last move of each of the subject's killing conversions.
func killMove(c model.Conversion, subject int) (model.Move, bool) {
	if c.PlayerIndex != subject || !c.DidKill {
		return model.Move{}, false
	}
	return lo.Last(c.Moves)
}

// neutralOpener is the first move of each conversion the subject opened from neutral.
func neutralOpener(c model.Conversion, subject int) (model.Move, bool) {
	if c.PlayerIndex != subject || c.OpeningType != model.OpeningNeutralWin {
		return model.Move{}, false
	}
	return lo.First(c.Moves)
}

func mostCommonMove(pick movePicker) ComputeFunc {
	return func(matches []*model.MatchRecord, o model.Orientation, _ int) (any, Simple) {
		var counts []MoveCount
		index := make(map[int]int)
		for _, m := range matches {
			for _, c := range m.Stats.Conversions {
				mv, ok := pick(c, o.Subject)
				if !ok {
					continue
				}
				i, seen := index[mv.MoveID]
				if !seen {
					i = len(counts)
					index[mv.MoveID] = i
					counts = append(counts, MoveCount{
						ID:        mv.MoveID,
						Name:      melee.MoveName(mv.MoveID),
						ShortName: melee.MoveShortName(mv.MoveID),
					})
				}
				counts[i].Count++
			}
		}

		// Stable so ties keep first-seen order.
		sort.SliceStable(counts, func(i, j int) bool {
			return counts[i].Count > counts[j].Count
		})
		if len(counts) == 0 {
			return []MoveCount{}, naSimple()
		}
		top := counts[0]
		return counts, Simple{Text: fmt.Sprintf("%s (%d)", top.ShortName, top.Count)}
	}
}
