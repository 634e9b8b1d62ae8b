// Package outcome derives a player's result in a match from the raw game-end event.
package outcome

import "github.com/pable/go-slp-stats/internal/model"

// Outcome is a player's result in one match.
type Outcome string

const (
	Winner  Outcome = "winner"
	Loser   Outcome = "loser"
	Unknown Outcome = "unknown"
)

// Resolve returns the outcome for playerIndex in m.
//
// Timeouts are not modelled and resolve to Unknown, as does a match with no
// game-end event. A GAME! ending is decided by stocks remaining at the latest
// frame: both players on zero is a double KO and stays Unknown. On an LRAS
// no-contest the initiator loses.
func Resolve(m *model.MatchRecord, playerIndex int) Outcome {
	if m.GameEnd == nil {
		return Unknown
	}

	switch m.GameEnd.GameEndMethod {
	case model.GameEndGame:
		return byStocks(m, playerIndex)
	case model.GameEndNoContest:
		initiator := m.GameEnd.LRASInitiatorIndex
		if initiator == nil || *initiator < 0 {
			return Unknown
		}
		if *initiator == playerIndex {
			return Loser
		}
		return Winner
	default:
		return Unknown
	}
}

func byStocks(m *model.MatchRecord, playerIndex int) Outcome {
	opp, ok := opponent(m, playerIndex)
	if !ok {
		return Unknown
	}
	mine, okMine := m.StocksRemaining(playerIndex)
	theirs, okTheirs := m.StocksRemaining(opp)
	if !okMine || !okTheirs {
		return Unknown
	}

	switch {
	case mine == 0 && theirs == 0:
		return Unknown
	case mine == 0:
		return Loser
	case theirs == 0:
		return Winner
	default:
		// Nobody ran out; the frame data does not support a GAME! ending.
		return Unknown
	}
}

func opponent(m *model.MatchRecord, playerIndex int) (int, bool) {
	for _, p := range m.Settings.Players {
		if p.PlayerIndex != playerIndex {
			return p.PlayerIndex, true
		}
	}
	return 0, false
}
