package parser

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/matryer/is"

	"github.com/pable/go-slp-stats/internal/model"
)

const sampleRecord = `{
  "settings": {
    "stageId": 31,
    "players": [
      {"playerIndex": 0, "port": 1, "characterId": 2, "characterColor": 0, "nametag": ""},
      {"playerIndex": 1, "port": 2, "characterId": 20, "characterColor": 1, "nametag": "BBB"}
    ]
  },
  "stats": {
    "lastFrame": 7200,
    "overall": [
      {"playerIndex": 0, "opponentIndex": 1,
       "openingsPerKill": {"count": 12, "total": 4, "ratio": 3},
       "damagePerOpening": {"count": 400.5, "total": 12, "ratio": 33.375},
       "neutralWinRatio": {"count": 7, "total": 12, "ratio": 0.58},
       "inputsPerMinute": {"count": 2100, "total": 2, "ratio": 1050}}
    ],
    "conversions": [
      {"playerIndex": 0, "opponentIndex": 1, "startPercent": 20, "endPercent": null,
       "didKill": false, "openingType": "neutral-win", "moves": [{"moveId": 9}]}
    ],
    "stocks": [
      {"playerIndex": 1, "opponentIndex": 0, "endPercent": 112.5},
      {"playerIndex": 1, "opponentIndex": 0, "endPercent": null}
    ]
  },
  "metadata": {"startAt": "2020-02-01T20:12:00Z"},
  "latestFrame": {"frame": 7200, "players": {"0": {"post": {"stocksRemaining": 2}}, "1": {"post": {"stocksRemaining": 0}}}},
  "gameEnd": {"gameEndMethod": 2, "lrasInitiatorIndex": -1}
}`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseRecord(t *testing.T) {
	is := is.New(t)
	path := writeFile(t, t.TempDir(), "game1.json", sampleRecord)

	rec, err := ParseRecord(path)
	is.NoErr(err)
	is.Equal(rec.FilePath, path)
	is.Equal(len(rec.Hash), 64)

	is.Equal(rec.Settings.StageID, 31)
	is.Equal(len(rec.Settings.Players), 2)
	is.Equal(rec.Settings.Players[1].Nametag, "BBB")

	overall, ok := rec.OverallFor(0)
	is.True(ok)
	is.Equal(overall.DamagePerOpening.Count, 400.5)

	is.Equal(rec.Stats.Stocks[0].Ended(), true)
	is.Equal(rec.Stats.Stocks[1].Ended(), false)
	is.Equal(rec.Stats.Conversions[0].OpeningType, model.OpeningNeutralWin)

	stocks, ok := rec.StocksRemaining(1)
	is.True(ok)
	is.Equal(stocks, 0)
	is.Equal(rec.GameEnd.GameEndMethod, model.GameEndGame)
	is.Equal(rec.Metadata.StartAt.Year(), 2020)
}

// recordWithFrame is a minimal singles record whose latest frame players use
// the given JSON shape.
func recordWithFrame(ports [2]int, players string) string {
	return `{
  "settings": {"stageId": 8, "players": [
    {"playerIndex": ` + strconv.Itoa(ports[0]-1) + `, "port": ` + strconv.Itoa(ports[0]) + `, "characterId": 9},
    {"playerIndex": ` + strconv.Itoa(ports[1]-1) + `, "port": ` + strconv.Itoa(ports[1]) + `, "characterId": 2}
  ]},
  "stats": {"lastFrame": 3600},
  "metadata": {"startAt": "2020-02-01T20:12:00Z"},
  "latestFrame": {"frame": 3600, "players": ` + players + `},
  "gameEnd": {"gameEndMethod": 2}
}`
}

func TestParseRecord_FramePlayerShapes(t *testing.T) {
	tests := []struct {
		name    string
		ports   [2]int
		players string
		want    map[int]int
		absent  []int
	}{
		{
			name:    "object",
			ports:   [2]int{1, 2},
			players: `{"0": {"post": {"stocksRemaining": 0}}, "1": {"post": {"stocksRemaining": 2}}}`,
			want:    map[int]int{0: 0, 1: 2},
		},
		{
			name:    "array",
			ports:   [2]int{1, 2},
			players: `[{"post": {"stocksRemaining": 0}}, {"post": {"stocksRemaining": 2}}]`,
			want:    map[int]int{0: 0, 1: 2},
		},
		{
			name:    "sparse array",
			ports:   [2]int{3, 4},
			players: `[null, null, {"post": {"stocksRemaining": 3}}, {"post": {"stocksRemaining": 0}}]`,
			want:    map[int]int{2: 3, 3: 0},
			absent:  []int{0, 1},
		},
		{
			name:    "null",
			ports:   [2]int{1, 2},
			players: `null`,
			want:    map[int]int{},
			absent:  []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			path := writeFile(t, t.TempDir(), "g.json", recordWithFrame(tt.ports, tt.players))

			rec, err := ParseRecord(path)
			is.NoErr(err)
			is.Equal(len(rec.LatestFrame.Players), len(tt.want))
			for idx, stocks := range tt.want {
				got, ok := rec.StocksRemaining(idx)
				is.True(ok)
				is.Equal(got, stocks)
			}
			for _, idx := range tt.absent {
				_, ok := rec.StocksRemaining(idx)
				is.True(!ok)
			}
		})
	}
}

func TestParseRecord_FramePlayersWrongType(t *testing.T) {
	is := is.New(t)
	path := writeFile(t, t.TempDir(), "g.json", recordWithFrame([2]int{1, 2}, `"oops"`))
	_, err := ParseRecord(path)
	is.True(err != nil)
}

func TestParseRecord_Bad(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	_, err := ParseRecord(filepath.Join(dir, "missing.json"))
	is.True(err != nil)

	_, err = ParseRecord(writeFile(t, dir, "broken.json", "{not json"))
	is.True(err != nil)
}

func TestParseDir(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeFile(t, dir, "b.json", sampleRecord)
	writeFile(t, dir, "a.JSON", sampleRecord)
	writeFile(t, dir, "notes.txt", "ignored")
	is.NoErr(os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	recs, err := ParseDir(context.Background(), dir, DefaultExt)
	is.NoErr(err)
	is.Equal(len(recs), 2)
	is.Equal(filepath.Base(recs[0].FilePath), "a.JSON")
	is.Equal(filepath.Base(recs[1].FilePath), "b.json")
	is.Equal(recs[0].Hash, recs[1].Hash)
}

func TestParseDir_OneBadFileFailsLoad(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeFile(t, dir, "a.json", sampleRecord)
	writeFile(t, dir, "b.json", "[]")

	_, err := ParseDir(context.Background(), dir, DefaultExt)
	is.True(err != nil)
}
