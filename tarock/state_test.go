package tarock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleState() GameState {
	st := NewGameState()
	st.Players[0].Hand = MustParseCollection(HandSize, "H1H3T5T6K1K2K3K4KBKP....")
	st.Players[1].Hand = MustParseCollection(HandSize, "X8T22T21")
	st.Players[2].Hand = MustParseCollection(HandSize, "HK")
	st.Players[3].Hand = MustParseCollection(HandSize, "HX")
	for i := range st.Players {
		st.Players[i].Tricks = MustParseCollection(DeckSize, "..............")
	}
	st.Trick = MustParseCollection(TrickSize, "T12....")
	st.Talon = [2]Collection{
		MustParseCollection(TalonSize, "HDT"),
		MustParseCollection(TalonSize, "HDT"),
	}
	st.SmallBeatsBig = true
	return st
}

func TestGameStateEqual(t *testing.T) {
	a := sampleState()
	b := sampleState()
	assert.True(t, a.Equal(b))

	b.Players[0].Hand = MustParseCollection(HandSize, "KPKBK4K3K2K1T6T5H3H1....")
	assert.True(t, a.Equal(b), "hand order must not matter")

	b.Players[1].Calls.Trull = true
	assert.False(t, a.Equal(b))

	c := sampleState()
	c.SmallBeatsBig = false
	assert.False(t, a.Equal(c))

	d := sampleState()
	d.Reserved = "R12"
	assert.False(t, a.Equal(d))

	e := sampleState()
	e.Talon[1] = MustParseCollection(TalonSize, "hd")
	assert.True(t, a.Equal(e), "HDT decodes to one card plus two empty slots")

	e.Talon[1] = NewTalon()
	assert.False(t, a.Equal(e))
}

func TestGameStateCopiesAreIndependent(t *testing.T) {
	a := sampleState()
	b := a
	b.Players[2].Hand = MustParseCollection(HandSize, "T1")
	b.Players[2].Calls.Contract = ContractR

	assert.True(t, a.Players[2].Hand.Contains(HK))
	assert.False(t, a.Players[2].Hand.Contains(T1))
	assert.Equal(t, NoContract, a.Players[2].Calls.Contract)
}

func TestNewGameStateCapacities(t *testing.T) {
	st := NewGameState()
	for _, p := range st.Players {
		assert.Equal(t, HandSize, p.Hand.Cap())
		assert.Equal(t, DeckSize, p.Tricks.Cap())
		assert.Equal(t, Calls{}, p.Calls)
	}
	assert.Equal(t, TrickSize, st.Trick.Cap())
	assert.Equal(t, TalonSize, st.Talon[0].Cap())
	assert.Equal(t, TalonSize, st.Talon[1].Cap())
	assert.Empty(t, st.Declarers())
}

func TestCallsFlags(t *testing.T) {
	assert.Equal(t, "", Calls{}.Flags())
	assert.Equal(t, "1K", Calls{Pagat: true, Kings: true}.Flags())
	assert.Equal(t, "1234TUKV", Calls{
		Pagat: true, Uhu: true, Pelikan: true, Quapil: true,
		Trull: true, Ultimo: true, Kings: true, Valat: true,
	}.Flags())
}

func TestTalonString(t *testing.T) {
	assert.Equal(t, "-", TalonNone.String())
	assert.Equal(t, "1", TalonFirst.String())
	assert.Equal(t, "2", TalonSecond.String())
	assert.Equal(t, "12", TalonBoth.String())
}

func TestDeclarers(t *testing.T) {
	st := NewGameState()
	st.Players[1].Calls.Contract = ContractR
	st.Players[3].Calls.Contract = ContractSD
	assert.Equal(t, []int{1, 3}, st.Declarers())
}
