// Package render writes parsed game states for people and tools.
package render

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/lox/tarockbots/tarock"
)

// Document is the serialized shape of a GameState. Collections list populated slots
// only; "." stands for an unknown card.
type Document struct {
	SmallBeatsBig bool          `toml:"small_beats_big" yaml:"small_beats_big"`
	Reserved      string        `toml:"reserved" yaml:"reserved"`
	Trick         []string      `toml:"trick" yaml:"trick"`
	Talon         [2][]string   `toml:"talon" yaml:"talon"`
	Players       []PlayerEntry `toml:"players" yaml:"players"`
}

// PlayerEntry is one seat of a Document. Seat is 1-based as in the notation.
type PlayerEntry struct {
	Seat       int      `toml:"seat" yaml:"seat"`
	Hand       []string `toml:"hand" yaml:"hand"`
	Tricks     []string `toml:"tricks" yaml:"tricks"`
	Contract   string   `toml:"contract,omitempty" yaml:"contract,omitempty"`
	CalledKing string   `toml:"called_king,omitempty" yaml:"called_king,omitempty"`
	Teammate   int      `toml:"teammate,omitempty" yaml:"teammate,omitempty"`
	TakenTalon string   `toml:"taken_talon,omitempty" yaml:"taken_talon,omitempty"`
	Calls      []string `toml:"calls,omitempty" yaml:"calls,omitempty"`
}

// NewDocument converts a state into its Document.
func NewDocument(st tarock.GameState) Document {
	doc := Document{
		SmallBeatsBig: st.SmallBeatsBig,
		Reserved:      st.Reserved,
		Trick:         codes(st.Trick),
		Talon:         [2][]string{codes(st.Talon[0]), codes(st.Talon[1])},
		Players:       make([]PlayerEntry, 0, tarock.NumPlayers),
	}
	for i, p := range st.Players {
		entry := PlayerEntry{
			Seat:   i + 1,
			Hand:   codes(p.Hand),
			Tricks: codes(p.Tricks),
			Calls:  CallNames(p.Calls),
		}
		if p.Calls.IsDeclarer() {
			entry.Contract = p.Calls.Contract.String()
			entry.TakenTalon = p.Calls.TakenTalon.String()
			entry.Teammate = p.Calls.Teammate
			if p.Calls.CalledKing != tarock.NoCard {
				entry.CalledKing = p.Calls.CalledKing.String()
			}
		}
		doc.Players = append(doc.Players, entry)
	}
	return doc
}

// TOML writes st as a TOML document.
func TOML(w io.Writer, st tarock.GameState) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	if err := enc.Encode(NewDocument(st)); err != nil {
		return fmt.Errorf("render: encode toml: %w", err)
	}
	return nil
}

// Entry is one state of an Archive together with its source line number.
type Entry struct {
	Line  int      `toml:"line" yaml:"line"`
	State Document `toml:"state" yaml:"state"`
}

// Archive collects the states of a whole notation file.
type Archive struct {
	States []Entry `toml:"states" yaml:"states"`
}

// TOMLArchive writes states as a single TOML archive. lines holds the source
// line number of each state and must be as long as states.
func TOMLArchive(w io.Writer, lines []int, states []tarock.GameState) error {
	archive, err := newArchive(lines, states)
	if err != nil {
		return err
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	if err := enc.Encode(archive); err != nil {
		return fmt.Errorf("render: encode toml archive: %w", err)
	}
	return nil
}

func newArchive(lines []int, states []tarock.GameState) (Archive, error) {
	if len(lines) != len(states) {
		return Archive{}, fmt.Errorf("render: %d line numbers for %d states", len(lines), len(states))
	}
	archive := Archive{States: make([]Entry, len(states))}
	for i, st := range states {
		archive.States[i] = Entry{Line: lines[i], State: NewDocument(st)}
	}
	return archive, nil
}

func codes(c tarock.Collection) []string {
	out := make([]string, 0, c.Len())
	for _, card := range c.Cards() {
		if card != tarock.NoCard {
			out = append(out, card.String())
		}
	}
	return out
}

// CallNames lists the bonus calls a player announced, in notation order.
func CallNames(c tarock.Calls) []string {
	var names []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{c.Pagat, "pagat"},
		{c.Uhu, "uhu"},
		{c.Pelikan, "pelikan"},
		{c.Quapil, "quapil"},
		{c.Trull, "trull"},
		{c.Ultimo, "ultimo"},
		{c.Kings, "kings"},
		{c.Valat, "valat"},
	} {
		if f.set {
			names = append(names, f.name)
		}
	}
	return names
}
