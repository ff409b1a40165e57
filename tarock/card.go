package tarock

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownCard is returned when a token is not a card code.
var ErrUnknownCard = errors.New("unrecognized card")

// DeckSize is the number of physical cards in a Tarock deck.
const DeckSize = 54

// Suit represents a card suit
type Suit uint8

const (
	NoSuit Suit = iota
	Hearts
	Spades
	Diamonds
	Clubs
	Trumps
)

// String returns the notation letter of the suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Spades:
		return "P"
	case Diamonds:
		return "K"
	case Clubs:
		return "X"
	case Trumps:
		return "T"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds, whose pips run 1-4.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is either a pip/trump number (1-22) or one of the four face ranks.
type Rank uint8

const (
	Jack Rank = iota + 23
	Knight
	Queen
	King
)

// IsFace reports whether the rank is one of K, D, P, B.
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// String returns the notation text of the rank
func (r Rank) String() string {
	switch r {
	case Jack:
		return "B"
	case Knight:
		return "P"
	case Queen:
		return "D"
	case King:
		return "K"
	case 0:
		return "?"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is one of the 54 Tarock cards, Unknown, or NoCard for an empty slot.
type Card uint8

const (
	NoCard Card = iota
	Unknown

	HK
	HD
	HP
	HB
	H1
	H2
	H3
	H4

	PK
	PD
	PP
	PB
	P10
	P9
	P8
	P7

	KK
	KD
	KP
	KB
	K1
	K2
	K3
	K4

	XK
	XD
	XP
	XB
	X10
	X9
	X8
	X7

	T1
	T2
	T3
	T4
	T5
	T6
	T7
	T8
	T9
	T10
	T11
	T12
	T13
	T14
	T15
	T16
	T17
	T18
	T19
	T20
	T21
	T22

	numCards
)

type cardInfo struct {
	code string
	suit Suit
	rank Rank
}

var cardTable = func() [numCards]cardInfo {
	var t [numCards]cardInfo
	t[NoCard] = cardInfo{code: "-"}
	t[Unknown] = cardInfo{code: "."}

	faces := [4]Rank{King, Queen, Knight, Jack}
	colored := []struct {
		suit  Suit
		first Card
		pips  [4]Rank
	}{
		{Hearts, HK, [4]Rank{1, 2, 3, 4}},
		{Spades, PK, [4]Rank{10, 9, 8, 7}},
		{Diamonds, KK, [4]Rank{1, 2, 3, 4}},
		{Clubs, XK, [4]Rank{10, 9, 8, 7}},
	}
	for _, c := range colored {
		for i, rank := range append(faces[:], c.pips[:]...) {
			card := c.first + Card(i)
			t[card] = cardInfo{code: c.suit.String() + rank.String(), suit: c.suit, rank: rank}
		}
	}
	for n := 1; n <= 22; n++ {
		card := T1 + Card(n-1)
		t[card] = cardInfo{code: "T" + strconv.Itoa(n), suit: Trumps, rank: Rank(n)}
	}
	return t
}()

var cardsByCode = func() map[string]Card {
	m := make(map[string]Card, numCards-1)
	for c := Unknown; c < numCards; c++ {
		m[cardTable[c].code] = c
	}
	return m
}()

// ParseCard decodes a single card code, ignoring ASCII case. "." decodes to Unknown.
func ParseCard(s string) (Card, error) {
	if c, ok := cardsByCode[UpperASCII(s)]; ok {
		return c, nil
	}
	return NoCard, fmt.Errorf("%w: %q", ErrUnknownCard, s)
}

// MustParseCard is like ParseCard but panics on error.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// AllCards returns the 54 physical cards in deck order.
func AllCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for c := HK; c < numCards; c++ {
		cards = append(cards, c)
	}
	return cards
}

// String returns the upper-case notation code
func (c Card) String() string {
	if c >= numCards {
		return "?"
	}
	return cardTable[c].code
}

// Suit returns the suit, or NoSuit for Unknown and NoCard.
func (c Card) Suit() Suit {
	if c >= numCards {
		return NoSuit
	}
	return cardTable[c].suit
}

// Rank returns the rank, or 0 for Unknown and NoCard.
func (c Card) Rank() Rank {
	if c >= numCards {
		return 0
	}
	return cardTable[c].rank
}

// IsTrump returns true for T1-T22.
func (c Card) IsTrump() bool {
	return c.Suit() == Trumps
}

// IsKnown returns true for physical cards.
func (c Card) IsKnown() bool {
	return c >= HK && c < numCards
}

// UpperASCII maps a-z to A-Z and leaves every other byte alone. Notation is
// case-insensitive over ASCII only, so runes such as the Kelvin sign or the
// long s never stand in for K or S.
func UpperASCII(s string) string {
	i := 0
	for i < len(s) && !isLowerASCII(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isLowerASCII(b[i]) {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

func isLowerASCII(c byte) bool { return 'a' <= c && c <= 'z' }
