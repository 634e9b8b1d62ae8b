package aggregator

import (
	"fmt"

	"github.com/pable/go-slp-stats/internal/matchset"
	"github.com/pable/go-slp-stats/internal/model"
)

// ComputeStats evaluates every catalogue definition for both orientations of a
// filtered match set. Results are ordered as the orientations: settings order
// first, mirror second.
func ComputeStats(matches []*model.MatchRecord) ([]StatOutput, error) {
	orientations, err := matchset.Orientations(matches)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	out := make([]StatOutput, 0, len(catalogue))
	for _, def := range catalogue {
		results := make([]StatResult, 0, len(orientations))
		for _, o := range orientations {
			r := def.Compute(matches, o)
			r.Port = matchset.SubjectPort(matches, o)
			results = append(results, r)
		}
		out = append(out, def.Output(results))
	}
	return out, nil
}
