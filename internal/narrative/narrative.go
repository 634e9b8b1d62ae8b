// Package narrative builds the per-game summary shown ahead of the stats.
package narrative

import (
	"fmt"
	"sort"
	"time"

	"github.com/pable/go-slp-stats/internal/melee"
	"github.com/pable/go-slp-stats/internal/model"
	"github.com/pable/go-slp-stats/internal/outcome"
)

// FramesPerSecond is the game's fixed simulation rate.
const FramesPerSecond = 60

type Stage struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Player struct {
	Port               int             `json:"port" yaml:"port"`
	CharacterID        int             `json:"characterId" yaml:"characterId"`
	CharacterColor     int             `json:"characterColor" yaml:"characterColor"`
	Nametag            string          `json:"nametag" yaml:"nametag"`
	CharacterName      string          `json:"characterName" yaml:"characterName"`
	CharacterColorName string          `json:"characterColorName" yaml:"characterColorName"`
	Outcome            outcome.Outcome `json:"outcome" yaml:"outcome"`
}

// Game is one line of the narrative.
type Game struct {
	Stage     Stage     `json:"stage" yaml:"stage"`
	Players   []Player  `json:"players" yaml:"players"`
	StartTime time.Time `json:"startTime" yaml:"startTime"`
	Duration  string    `json:"duration" yaml:"duration"`
}

// Compose orders the matches by start time and describes each one. The input
// slice is not reordered.
func Compose(matches []*model.MatchRecord) []Game {
	ordered := append([]*model.MatchRecord(nil), matches...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Metadata.StartAt.Before(ordered[j].Metadata.StartAt)
	})

	games := make([]Game, 0, len(ordered))
	for _, m := range ordered {
		g := Game{
			Stage:     Stage{ID: m.Settings.StageID, Name: melee.StageName(m.Settings.StageID)},
			StartTime: m.Metadata.StartAt,
			Duration:  FormatDuration(m.Stats.LastFrame),
		}
		for _, p := range m.Settings.Players {
			g.Players = append(g.Players, Player{
				Port:               p.Port,
				CharacterID:        p.CharacterID,
				CharacterColor:     p.CharacterColor,
				Nametag:            p.Nametag,
				CharacterName:      melee.CharacterName(p.CharacterID),
				CharacterColorName: melee.CharacterColorName(p.CharacterID, p.CharacterColor),
				Outcome:            outcome.Resolve(m, p.PlayerIndex),
			})
		}
		games = append(games, g)
	}
	return games
}

// FormatDuration renders a frame count as m:ss. Negative counts render as 0:00.
func FormatDuration(frames int) string {
	if frames < 0 {
		frames = 0
	}
	secs := frames / FramesPerSecond
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
