package matchset

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/pable/go-slp-stats/internal/model"
)

// makeMatch builds a minimal record whose players sit on the given ports, with
// player indices assigned in the same order.
func makeMatch(path string, ports ...int) *model.MatchRecord {
	m := &model.MatchRecord{FilePath: path}
	for i, port := range ports {
		m.Settings.Players = append(m.Settings.Players, model.PlayerInfo{
			PlayerIndex: port - 1,
			Port:        port,
			CharacterID: i,
		})
	}
	return m
}

func TestPortSignature(t *testing.T) {
	is := is.New(t)
	is.Equal(PortSignature(makeMatch("a", 1, 2)), "1-2")
	is.Equal(PortSignature(makeMatch("b", 2, 1)), "2-1")
}

func TestFilter_KeepsLargestPortGroup(t *testing.T) {
	is := is.New(t)
	a, b, c := makeMatch("a", 1, 2), makeMatch("b", 1, 2), makeMatch("c", 2, 1)

	res, err := Filter([]*model.MatchRecord{a, b, c})
	is.NoErr(err)
	is.Equal(res.Signature, "1-2")
	is.Equal(res.Matches, []*model.MatchRecord{a, b})
	is.Equal(len(res.Excluded), 1)
	is.Equal(res.Excluded[0].Match, c)
	is.Equal(res.Excluded[0].Reason, ReasonPortMismatch)
}

func TestFilter_ExcludesNonSingles(t *testing.T) {
	is := is.New(t)
	doubles := makeMatch("doubles", 1, 2, 3, 4)
	solo := makeMatch("solo", 1)
	a := makeMatch("a", 3, 4)

	res, err := Filter([]*model.MatchRecord{doubles, a, solo})
	is.NoErr(err)
	is.Equal(res.Matches, []*model.MatchRecord{a})
	is.Equal(len(res.Excluded), 2)
	is.Equal(res.Excluded[0].Match, doubles)
	is.Equal(res.Excluded[1].Match, solo)
	is.Equal(res.Excluded[0].Reason, ReasonNotSingles)
}

func TestFilter_TieGoesToFirstEncounteredGroup(t *testing.T) {
	is := is.New(t)
	x := makeMatch("x", 2, 1)
	y := makeMatch("y", 1, 2)
	x2 := makeMatch("x2", 2, 1)
	y2 := makeMatch("y2", 1, 2)

	res, err := Filter([]*model.MatchRecord{x, y, y2, x2})
	is.NoErr(err)
	is.Equal(res.Signature, "2-1")
	is.Equal(res.Matches, []*model.MatchRecord{x, x2})
}

func TestFilter_NoSingles(t *testing.T) {
	is := is.New(t)

	_, err := Filter([]*model.MatchRecord{makeMatch("d", 1, 2, 3, 4)})
	is.True(errors.Is(err, ErrNoValidMatches))

	_, err = Filter(nil)
	is.True(errors.Is(err, ErrNoValidMatches))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	is := is.New(t)
	in := []*model.MatchRecord{makeMatch("c", 2, 1), makeMatch("a", 1, 2), makeMatch("b", 1, 2)}
	before := append([]*model.MatchRecord(nil), in...)

	_, err := Filter(in)
	is.NoErr(err)
	is.Equal(in, before)
}

func TestOrientations(t *testing.T) {
	is := is.New(t)
	m := makeMatch("a", 2, 4)

	o, err := Orientations([]*model.MatchRecord{m})
	is.NoErr(err)
	is.Equal(o[0], model.Orientation{Subject: 1, Opponent: 3})
	is.Equal(o[1], model.Orientation{Subject: 3, Opponent: 1})
	is.Equal(o[1], o[0].Mirror())

	is.Equal(SubjectPort([]*model.MatchRecord{m}, o[0]), 2)
	is.Equal(SubjectPort([]*model.MatchRecord{m}, o[1]), 4)
}

func TestOrientations_Empty(t *testing.T) {
	is := is.New(t)
	_, err := Orientations(nil)
	is.True(errors.Is(err, ErrNoValidMatches))
}
