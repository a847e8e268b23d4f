package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankValueIsBijection(t *testing.T) {
	seen := map[int]Rank{}
	for _, rank := range Ranks {
		v := rank.Value()
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 14)
		_, dup := seen[v]
		require.False(t, dup, "value %d used twice", v)
		seen[v] = rank

		back, ok := RankFromValue(v)
		require.True(t, ok)
		assert.Equal(t, rank, back)
	}
	assert.Len(t, seen, 13)

	assert.Equal(t, 10, RankTen.Value())
	assert.Equal(t, 11, RankJack.Value())
	assert.Equal(t, 14, RankAce.Value())
	assert.Equal(t, 0, Rank("Z").Value())

	_, ok := RankFromValue(15)
	assert.False(t, ok)
}

func TestParseRankAndSuit(t *testing.T) {
	r, ok := ParseRank(" q ")
	assert.True(t, ok)
	assert.Equal(t, RankQueen, r)

	_, ok = ParseRank("11")
	assert.False(t, ok)

	s, ok := ParseSuit("Hearts")
	assert.True(t, ok)
	assert.Equal(t, SuitHearts, s)
	assert.Equal(t, ColorRed, s.Color())
	assert.Equal(t, ColorBlack, SuitClubs.Color())
}

func TestGameStateCloneIsDeep(t *testing.T) {
	state := NewGameState("ABCD")
	state.Players = append(state.Players, &Player{
		ID:   "p1",
		Name: "Alice",
		Hand: []Card{NewCard("c1", SuitHearts, RankSeven)},
	})
	state.PendingAllocations["a1"] = &SipAllocation{FromPlayerID: "p1", ToPlayerID: "p2", Amount: 2}
	active := NewCard("c2", SuitSpades, RankAce)
	state.ActiveCard = &active

	cp := state.Clone()
	cp.Players[0].Hand[0].Hidden = false
	cp.Players[0].SipsTaken = 3
	cp.PendingAllocations["a1"].Amount = 9
	cp.ActiveCard.Hidden = false

	assert.True(t, state.Players[0].Hand[0].Hidden)
	assert.Equal(t, 0, state.Players[0].SipsTaken)
	assert.Equal(t, 2, state.PendingAllocations["a1"].Amount)
	assert.True(t, state.ActiveCard.Hidden)
	assert.Equal(t, 2, state.CardsInPlay())
}
