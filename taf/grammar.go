package taf

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/lox/tarockbots/tarock"
)

// Capture names of the cards group, in notation order.
const (
	groupTalon0 = "talon0"
	groupTalon1 = "talon1"
	groupTrick  = "trick"
)

func handGroup(seat int) string   { return fmt.Sprintf("hand%d", seat) }
func tricksGroup(seat int) string { return fmt.Sprintf("tricks%d", seat) }

// contractCodes lists longer codes before their prefixes so leftmost-first
// matching never stops early.
const contractCodes = `SPD|SR|BR|BO|PD|SD|PO[1-3]|PB[1-3]|P[1-3]|[TRSBD]`

const callField = `1?2?3?4?T?U?K?V?`

// Patterns are upper-case only; fields are folded with tarock.UpperASCII first.

func cardRun(name string, min, max int) string {
	return fmt.Sprintf(`(?P<%s>(?:%s){%d,%d})`, name, tarock.CardPattern, min, max)
}

var cardsGroupPattern = sync.OnceValue(func() *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`^`)
	b.WriteString(cardRun(groupTalon0, tarock.TalonSize, tarock.TalonSize))
	b.WriteString(`/`)
	b.WriteString(cardRun(groupTalon1, tarock.TalonSize, tarock.TalonSize))
	for seat := range tarock.NumPlayers {
		b.WriteString(`#`)
		b.WriteString(cardRun(handGroup(seat), 0, tarock.HandSize))
		b.WriteString(`/`)
		b.WriteString(cardRun(tricksGroup(seat), 0, tarock.DeckSize))
	}
	b.WriteString(`#`)
	b.WriteString(cardRun(groupTrick, 0, tarock.TrickSize))
	b.WriteString(`$`)
	return regexp.MustCompile(b.String())
})

// Player digits are matched as any digit so that an out-of-range seat is
// reported as such instead of as a malformed group.
var contractGroupPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^(?P<pairs>(?:(?:` + contractCodes + `)\d){1,` + fmt.Sprint(tarock.NumPlayers) + `})` +
		`(?P<king>` + tarock.CardPattern + `|-)` +
		`(?P<teammate>\d|-)` +
		`(?P<talon>12|[12-])$`)
})

var contractPairPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(` + contractCodes + `)(\d)`)
})

var callFieldPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^` + callField + `$`)
})
