package summary

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/pable/go-slp-stats/internal/highlight"
	"github.com/pable/go-slp-stats/internal/model"
)

func pct(v float64) *float64 { return &v }

func makeSet() []*model.MatchRecord {
	players := []model.PlayerInfo{
		{PlayerIndex: 0, Port: 1, CharacterID: 2},
		{PlayerIndex: 1, Port: 2, CharacterID: 20},
	}
	start := time.Date(2020, 2, 1, 20, 0, 0, 0, time.UTC)
	var set []*model.MatchRecord
	for i := 0; i < 3; i++ {
		set = append(set, &model.MatchRecord{
			Settings: model.Settings{StageID: 31, Players: players},
			Metadata: model.Metadata{StartAt: start.Add(time.Duration(3-i) * time.Minute)},
			GameEnd:  &model.GameEnd{GameEndMethod: model.GameEndTime},
			Stats: model.Stats{
				LastFrame: 60 * 200,
				Overall: []model.OverallStats{
					{PlayerIndex: 0, OpeningsPerKill: model.RatioObservation{Count: 8, Total: 2}},
					{PlayerIndex: 1, OpeningsPerKill: model.RatioObservation{Count: 5, Total: 1}},
				},
				Stocks: []model.Stock{
					{PlayerIndex: 0, EndPercent: pct(float64(50 + i))},
					{PlayerIndex: 1, EndPercent: pct(float64(90 - i))},
				},
				Conversions: []model.Conversion{
					{PlayerIndex: 1, DidKill: true, Moves: []model.Move{{MoveID: 14}}},
					{PlayerIndex: 0, DidKill: true, Moves: []model.Move{{MoveID: 11}}},
				},
			},
		})
	}
	return set
}

func TestGenerate(t *testing.T) {
	is := is.New(t)
	out, err := Generate(makeSet(), highlight.DefaultOptions(), highlight.NewRand(9))
	is.NoErr(err)

	is.Equal(len(out.Games), 3)
	is.True(out.Games[0].StartTime.Before(out.Games[2].StartTime))
	is.Equal(out.Games[0].Duration, "3:20")

	is.Equal(len(out.Summary), 12)
	is.Equal(out.Summary[0].Results[0].Simple.Text, "4.0")
	is.Equal(out.Summary[0].Results[1].Simple.Text, "5.0")
	is.Equal(len(out.BtsSummary), 6)
}

func TestGenerate_Idempotent(t *testing.T) {
	is := is.New(t)
	set := makeSet()

	var first, second bytes.Buffer
	for _, buf := range []*bytes.Buffer{&first, &second} {
		out, err := Generate(set, highlight.DefaultOptions(), highlight.NewRand(1234))
		is.NoErr(err)
		is.NoErr(Encode(buf, out, FormatJSON))
	}
	is.Equal(first.String(), second.String())
}

func TestGenerate_EmptySet(t *testing.T) {
	is := is.New(t)
	_, err := Generate(nil, highlight.DefaultOptions(), highlight.NewRand(1))
	is.True(err != nil)
}

func TestEncode(t *testing.T) {
	is := is.New(t)
	out, err := Generate(makeSet(), highlight.DefaultOptions(), highlight.NewRand(5))
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(Encode(&buf, out, FormatJSON))
	var decoded map[string]json.RawMessage
	is.NoErr(json.Unmarshal(buf.Bytes(), &decoded))
	for _, key := range []string{"games", "summary", "btsSummary"} {
		_, ok := decoded[key]
		is.True(ok)
	}

	buf.Reset()
	is.NoErr(Encode(&buf, out, FormatYAML))
	is.True(strings.Contains(buf.String(), "btsSummary:"))
	is.True(strings.Contains(buf.String(), "id: openingsPerKill"))
	// Stock results keep the same keys as in JSON.
	is.True(strings.Contains(buf.String(), "endPercent:"))
	is.True(!strings.Contains(buf.String(), "endpercent:"))
	is.True(!strings.Contains(buf.String(), "playerindex:"))

	is.True(Encode(&buf, out, "xml") != nil)
}
