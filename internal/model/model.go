package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Game end methods reported by the replay's game-end event.
const (
	GameEndUnresolved GameEndMethod = 0
	GameEndTime       GameEndMethod = 1
	GameEndGame       GameEndMethod = 2
	GameEndResolved   GameEndMethod = 3
	GameEndNoContest  GameEndMethod = 7 // LRAS: a player held L+R+A+Start
)

// GameEndMethod is the raw end-of-match signal.
type GameEndMethod int

func (m GameEndMethod) String() string {
	switch m {
	case GameEndTime:
		return "time"
	case GameEndGame:
		return "game"
	case GameEndResolved:
		return "resolved"
	case GameEndNoContest:
		return "no-contest"
	default:
		return "unresolved"
	}
}

// OpeningNeutralWin is the opening type of a conversion started from neutral.
const OpeningNeutralWin = "neutral-win"

// ---- Records produced by the replay exporter ----

// MatchRecord is one parsed replay. It is read-only once loaded.
type MatchRecord struct {
	// FilePath and Hash are filled in by the loader, not the exporter.
	FilePath string `json:"-" yaml:"-"`
	Hash     string `json:"-" yaml:"-"`

	Settings    Settings `json:"settings"`
	Stats       Stats    `json:"stats"`
	Metadata    Metadata `json:"metadata"`
	LatestFrame *Frame   `json:"latestFrame"`
	GameEnd     *GameEnd `json:"gameEnd"`
}

type Settings struct {
	StageID int          `json:"stageId"`
	Players []PlayerInfo `json:"players"`
}

type PlayerInfo struct {
	PlayerIndex    int    `json:"playerIndex"`
	Port           int    `json:"port"`
	CharacterID    int    `json:"characterId"`
	CharacterColor int    `json:"characterColor"`
	Nametag        string `json:"nametag"`
}

// Stats is the exporter's precomputed stats block. Any of the slices may be absent.
type Stats struct {
	LastFrame   int            `json:"lastFrame"`
	Overall     []OverallStats `json:"overall"`
	Conversions []Conversion   `json:"conversions"`
	Stocks      []Stock        `json:"stocks"`
}

// RatioObservation is a per-match count/total pair.
type RatioObservation struct {
	Count float64  `json:"count"`
	Total float64  `json:"total"`
	Ratio *float64 `json:"ratio,omitempty"`
}

type OverallStats struct {
	PlayerIndex      int              `json:"playerIndex"`
	OpponentIndex    int              `json:"opponentIndex"`
	InputsPerMinute  RatioObservation `json:"inputsPerMinute"`
	OpeningsPerKill  RatioObservation `json:"openingsPerKill"`
	DamagePerOpening RatioObservation `json:"damagePerOpening"`
	NeutralWinRatio  RatioObservation `json:"neutralWinRatio"`
	TotalDamage      float64          `json:"totalDamage"`
	KillCount        int              `json:"killCount"`
}

// Conversion is a punish sequence performed by PlayerIndex.
type Conversion struct {
	PlayerIndex    int      `json:"playerIndex" yaml:"playerIndex"`
	OpponentIndex  int      `json:"opponentIndex" yaml:"opponentIndex"`
	StartFrame     int      `json:"startFrame" yaml:"startFrame"`
	EndFrame       *int     `json:"endFrame" yaml:"endFrame"`
	StartPercent   float64  `json:"startPercent" yaml:"startPercent"`
	CurrentPercent float64  `json:"currentPercent" yaml:"currentPercent"`
	EndPercent     *float64 `json:"endPercent" yaml:"endPercent"`
	Moves          []Move   `json:"moves" yaml:"moves"`
	DidKill        bool     `json:"didKill" yaml:"didKill"`
	OpeningType    string   `json:"openingType" yaml:"openingType"`
}

// Damage is the percent dealt by a completed conversion.
func (c Conversion) Damage() float64 {
	if c.EndPercent == nil {
		return 0
	}
	return *c.EndPercent - c.StartPercent
}

type Move struct {
	PlayerIndex int     `json:"playerIndex" yaml:"playerIndex"`
	Frame       int     `json:"frame" yaml:"frame"`
	MoveID      int     `json:"moveId" yaml:"moveId"`
	HitCount    int     `json:"hitCount" yaml:"hitCount"`
	Damage      float64 `json:"damage" yaml:"damage"`
}

// Stock is one life of PlayerIndex. EndPercent is nil while the stock is still alive.
type Stock struct {
	PlayerIndex    int      `json:"playerIndex" yaml:"playerIndex"`
	OpponentIndex  int      `json:"opponentIndex" yaml:"opponentIndex"`
	StartFrame     int      `json:"startFrame" yaml:"startFrame"`
	EndFrame       *int     `json:"endFrame" yaml:"endFrame"`
	StartPercent   float64  `json:"startPercent" yaml:"startPercent"`
	EndPercent     *float64 `json:"endPercent" yaml:"endPercent"`
	DeathAnimation *int     `json:"deathAnimation" yaml:"deathAnimation"`
	Count          int      `json:"count" yaml:"count"`
}

// Ended reports whether the stock was lost.
func (s Stock) Ended() bool { return s.EndPercent != nil }

type Metadata struct {
	StartAt   time.Time `json:"startAt"`
	LastFrame int       `json:"lastFrame"`
	PlayedOn  string    `json:"playedOn"`
}

// Frame is the last observed snapshot, keyed by player index.
type Frame struct {
	Frame   int                  `json:"frame"`
	Players map[int]*PlayerFrame `json:"players"`
}

// UnmarshalJSON accepts players either as an object keyed by player index or
// as an array indexed by player index. Exporters write the array sparse, so
// null entries are skipped.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var raw struct {
		Frame   int             `json:"frame"`
		Players json.RawMessage `json:"players"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Frame = raw.Frame
	f.Players = make(map[int]*PlayerFrame)

	players := bytes.TrimSpace(raw.Players)
	if len(players) == 0 || bytes.Equal(players, []byte("null")) {
		return nil
	}
	if players[0] == '[' {
		var list []*PlayerFrame
		if err := json.Unmarshal(players, &list); err != nil {
			return fmt.Errorf("frame players: %w", err)
		}
		for i, pf := range list {
			if pf != nil {
				f.Players[i] = pf
			}
		}
		return nil
	}

	var byIndex map[int]*PlayerFrame
	if err := json.Unmarshal(players, &byIndex); err != nil {
		return fmt.Errorf("frame players: %w", err)
	}
	for i, pf := range byIndex {
		if pf != nil {
			f.Players[i] = pf
		}
	}
	return nil
}

type PlayerFrame struct {
	Post PostFrameUpdate `json:"post"`
}

type PostFrameUpdate struct {
	PlayerIndex     int     `json:"playerIndex"`
	Percent         float64 `json:"percent"`
	StocksRemaining *int    `json:"stocksRemaining"`
}

type GameEnd struct {
	GameEndMethod      GameEndMethod `json:"gameEndMethod"`
	LRASInitiatorIndex *int          `json:"lrasInitiatorIndex"`
}

// StocksRemaining returns the player's stock count at the latest frame, if known.
func (m *MatchRecord) StocksRemaining(playerIndex int) (int, bool) {
	if m.LatestFrame == nil {
		return 0, false
	}
	pf, ok := m.LatestFrame.Players[playerIndex]
	if !ok || pf == nil || pf.Post.StocksRemaining == nil {
		return 0, false
	}
	return *pf.Post.StocksRemaining, true
}

// Player returns the settings entry for playerIndex.
func (m *MatchRecord) Player(playerIndex int) (PlayerInfo, bool) {
	for _, p := range m.Settings.Players {
		if p.PlayerIndex == playerIndex {
			return p, true
		}
	}
	return PlayerInfo{}, false
}

// OverallFor returns the overall stats row for playerIndex.
func (m *MatchRecord) OverallFor(playerIndex int) (OverallStats, bool) {
	for _, o := range m.Stats.Overall {
		if o.PlayerIndex == playerIndex {
			return o, true
		}
	}
	return OverallStats{}, false
}

// ---- Aggregated values ----

// Ratio is a count/total pair combined across matches. Value is nil when Total is zero.
type Ratio struct {
	Count float64  `json:"count" yaml:"count"`
	Total float64  `json:"total" yaml:"total"`
	Value *float64 `json:"ratio" yaml:"ratio"`
}

// Orientation is a (subject, opponent) pair of player indices.
type Orientation struct {
	Subject  int `json:"subject" yaml:"subject"`
	Opponent int `json:"opponent" yaml:"opponent"`
}

// Mirror returns the orientation seen from the opponent's side.
func (o Orientation) Mirror() Orientation {
	return Orientation{Subject: o.Opponent, Opponent: o.Subject}
}
