package tarock

import (
	"fmt"
	"strings"
)

// NumPlayers is the fixed number of seats.
const NumPlayers = 4

// Talon records which talon halves a declarer took.
type Talon uint8

const (
	TalonNone Talon = iota
	TalonFirst
	TalonSecond
	TalonBoth
)

// String returns the notation form: "-", "1", "2" or "12".
func (t Talon) String() string {
	switch t {
	case TalonFirst:
		return "1"
	case TalonSecond:
		return "2"
	case TalonBoth:
		return "12"
	default:
		return "-"
	}
}

// Calls holds what a player declared: the contract with its partner king,
// partner seat and talon choice, and the eight independent bonus calls.
type Calls struct {
	Contract   Contract
	CalledKing Card
	Teammate   int // seat number 1-4 as written in the notation, 0 when none
	TakenTalon Talon

	Pagat   bool // 1
	Uhu     bool // 2
	Pelikan bool // 3
	Quapil  bool // 4
	Trull   bool // T
	Ultimo  bool // U
	Kings   bool // K
	Valat   bool // V
}

// IsDeclarer reports whether the player announced a contract.
func (c Calls) IsDeclarer() bool {
	return c.Contract != NoContract
}

// Flags returns the bonus calls in notation order, e.g. "1K".
func (c Calls) Flags() string {
	var b strings.Builder
	for _, f := range []struct {
		set bool
		ch  byte
	}{
		{c.Pagat, '1'},
		{c.Uhu, '2'},
		{c.Pelikan, '3'},
		{c.Quapil, '4'},
		{c.Trull, 'T'},
		{c.Ultimo, 'U'},
		{c.Kings, 'K'},
		{c.Valat, 'V'},
	} {
		if f.set {
			b.WriteByte(f.ch)
		}
	}
	return b.String()
}

// Player is one seat at the table.
type Player struct {
	Hand   Collection
	Tricks Collection
	Calls  Calls
}

// NewPlayer returns a player with an empty hand and pile and no calls.
func NewPlayer() Player {
	return Player{Hand: NewHand(), Tricks: NewPile()}
}

// Equal compares hands and piles with Collection.Equal and calls exactly.
func (p Player) Equal(other Player) bool {
	return p.Hand.Equal(other.Hand) &&
		p.Tricks.Equal(other.Tricks) &&
		p.Calls == other.Calls
}

// GameState is a complete decoded table position. It is a plain value:
// copies are independent and nothing in this package mutates one in place.
type GameState struct {
	Players [NumPlayers]Player
	Trick   Collection
	Talon   [2]Collection

	// SmallBeatsBig is the table rule that lets small trumps stitch big ones.
	SmallBeatsBig bool

	// Reserved carries the fifth notation field verbatim. Its meaning is not
	// decoded yet.
	Reserved string
}

// NewGameState returns a state with empty collections of the right capacities.
func NewGameState() GameState {
	st := GameState{
		Trick: NewTrick(),
		Talon: [2]Collection{NewTalon(), NewTalon()},
	}
	for i := range st.Players {
		st.Players[i] = NewPlayer()
	}
	return st
}

// Equal compares two states, using Collection.Equal for every collection.
func (g GameState) Equal(other GameState) bool {
	for i := range g.Players {
		if !g.Players[i].Equal(other.Players[i]) {
			return false
		}
	}
	return g.Trick.Equal(other.Trick) &&
		g.Talon[0].Equal(other.Talon[0]) &&
		g.Talon[1].Equal(other.Talon[1]) &&
		g.SmallBeatsBig == other.SmallBeatsBig &&
		g.Reserved == other.Reserved
}

// Declarers returns the seat indexes (0-3) of players holding a contract.
func (g GameState) Declarers() []int {
	var seats []int
	for i, p := range g.Players {
		if p.Calls.IsDeclarer() {
			seats = append(seats, i)
		}
	}
	return seats
}

// String gives a compact multi-line dump for debugging.
func (g GameState) String() string {
	var b strings.Builder
	for i, p := range g.Players {
		fmt.Fprintf(&b, "player %d: hand [%s] tricks [%s] contract %s calls %q\n",
			i, p.Hand, p.Tricks, p.Calls.Contract, p.Calls.Flags())
	}
	fmt.Fprintf(&b, "trick [%s] talon [%s] [%s] small-beats-big %t", g.Trick, g.Talon[0], g.Talon[1], g.SmallBeatsBig)
	return b.String()
}
