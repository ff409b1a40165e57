package tarock

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Capacities of the collections that make up a game state.
const (
	HandSize  = 12
	TrickSize = 4
	TalonSize = 3
)

var (
	// ErrInvalidLength is returned when explicit cards do not fill a collection exactly.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCapacity is returned for capacities outside 0..DeckSize.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// CardPattern matches exactly one upper-case card token. Ten is tried before
// the single-character ranks and two-digit trumps before one-digit trumps.
// Input is folded with UpperASCII before matching.
const CardPattern = `[HK][1-4KDPB]|[PX](?:10|[7-9KDPB])|T(?:2[0-2]|1[0-9]|[1-9])|\.`

var cardToken = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(CardPattern)
})

// Collection is a fixed-capacity sequence of card slots plus a set of cards known
// to be absent. Slots hold NoCard when empty. Compare with Equal, not ==.
type Collection struct {
	slots    [DeckSize]Card
	excluded [DeckSize]Card
	size     int
}

// NewCollection returns an all-empty collection. It panics if capacity is
// outside 0..DeckSize.
func NewCollection(capacity int) Collection {
	if err := checkCapacity(capacity); err != nil {
		panic(err)
	}
	return Collection{size: capacity}
}

// NewHand returns an empty 12-slot hand.
func NewHand() Collection { return NewCollection(HandSize) }

// NewTrick returns an empty 4-slot trick.
func NewTrick() Collection { return NewCollection(TrickSize) }

// NewTalon returns an empty 3-slot talon half.
func NewTalon() Collection { return NewCollection(TalonSize) }

// NewPile returns an empty pile with room for the whole deck.
func NewPile() Collection { return NewCollection(DeckSize) }

func checkCapacity(capacity int) error {
	if capacity < 0 || capacity > DeckSize {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return nil
}

// CollectionOf fills a collection with exactly capacity cards.
func CollectionOf(capacity int, cards ...Card) (Collection, error) {
	if err := checkCapacity(capacity); err != nil {
		return Collection{}, err
	}
	if len(cards) != capacity {
		return Collection{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidLength, len(cards), capacity)
	}
	c := Collection{size: capacity}
	for i, card := range cards {
		if card >= numCards {
			return Collection{}, fmt.Errorf("%w: %d", ErrUnknownCard, card)
		}
		c.slots[i] = card
	}
	return c, nil
}

// ParseCollection scans s for card tokens and places them in order. Characters
// that are not part of a token are skipped, missing cards leave empty slots, and
// tokens beyond capacity are dropped.
func ParseCollection(capacity int, s string) (Collection, error) {
	if err := checkCapacity(capacity); err != nil {
		return Collection{}, err
	}
	c := Collection{size: capacity}
	for i, tok := range cardToken().FindAllString(UpperASCII(s), capacity) {
		card, err := ParseCard(tok)
		if err != nil {
			return Collection{}, err
		}
		c.slots[i] = card
	}
	return c, nil
}

// MustParseCollection is like ParseCollection but panics on error.
func MustParseCollection(capacity int, s string) Collection {
	c, err := ParseCollection(capacity, s)
	if err != nil {
		panic(err)
	}
	return c
}

// Cap returns the fixed number of slots.
func (c Collection) Cap() int {
	return c.size
}

// Len returns the number of populated slots.
func (c Collection) Len() int {
	n := 0
	for _, card := range c.slots[:c.size] {
		if card != NoCard {
			n++
		}
	}
	return n
}

// Cards returns a copy of every slot in order, including empty ones.
func (c Collection) Cards() []Card {
	out := make([]Card, c.size)
	copy(out, c.slots[:c.size])
	return out
}

// Contains reports whether card occupies any slot.
func (c Collection) Contains(card Card) bool {
	if card == NoCard {
		return false
	}
	for _, s := range c.slots[:c.size] {
		if s == card {
			return true
		}
	}
	return false
}

// Excludes reports whether card is in the excluded set.
func (c Collection) Excludes(card Card) bool {
	if card == NoCard {
		return false
	}
	for _, s := range c.excluded {
		if s == card {
			return true
		}
	}
	return false
}

// Exclude returns a copy with the given physical cards added to the excluded set.
func (c Collection) Exclude(cards ...Card) Collection {
	next := 0
	for next < DeckSize && c.excluded[next] != NoCard {
		next++
	}
	for _, card := range cards {
		if !card.IsKnown() || c.Excludes(card) {
			continue
		}
		c.excluded[next] = card
		next++
	}
	return c
}

// Equal compares populated slots as a multiset, together with the number of
// empty slots and the excluded set. Slot order is irrelevant.
func (c Collection) Equal(other Collection) bool {
	if c.size != other.size {
		return false
	}
	return sameMultiset(c.slots[:c.size], other.slots[:other.size]) &&
		sameMultiset(c.excluded[:], other.excluded[:])
}

func sameMultiset(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	var counts [numCards]int
	for _, card := range a {
		counts[card]++
	}
	for _, card := range b {
		counts[card]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// String lists the populated slots followed by the count of empty ones.
func (c Collection) String() string {
	var b strings.Builder
	for _, card := range c.slots[:c.size] {
		if card == NoCard {
			continue
		}
		b.WriteString(card.String())
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "+%d empty", c.size-c.Len())
	return b.String()
}
