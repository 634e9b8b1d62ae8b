package matchset

import (
	"fmt"

	"github.com/pable/go-slp-stats/internal/model"
)

// Orientations returns the subject/opponent pairs for a filtered set: the first
// follows the settings' player order, the second is its mirror.
func Orientations(matches []*model.MatchRecord) ([2]model.Orientation, error) {
	var out [2]model.Orientation
	if len(matches) == 0 {
		return out, ErrNoValidMatches
	}
	players := matches[0].Settings.Players
	if len(players) < 2 {
		return out, fmt.Errorf("orientations: need 2 players, got %d", len(players))
	}
	out[0] = model.Orientation{Subject: players[0].PlayerIndex, Opponent: players[1].PlayerIndex}
	out[1] = out[0].Mirror()
	return out, nil
}

// SubjectPort returns the port of the orientation's subject, taken from the
// first match of the set. Falls back to index+1 when the player is missing.
func SubjectPort(matches []*model.MatchRecord, o model.Orientation) int {
	if len(matches) > 0 {
		if p, ok := matches[0].Player(o.Subject); ok {
			return p.Port
		}
	}
	return o.Subject + 1
}
