package taf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/tarockbots/tarock"
)

// numFields is the number of whitespace-separated fields in a notation line:
// cards, contract, calls, table flag and the reserved field.
const numFields = 5

// Parse decodes one notation line into a GameState. The first failure is
// returned and no state is produced.
//
// Format: <cards> <contract> <calls> <flag> <reserved>
// Example: ".../...#hdt1t3t5t6k1k2k3k4kbkp/#.........../#.........../#.........../#hkx8t22t21 R1XK-1 1K/T// j -"
func Parse(line string) (tarock.GameState, error) {
	fields := strings.Fields(line)
	if len(fields) < numFields {
		return tarock.GameState{}, fmt.Errorf("%w: got %d of %d fields", ErrMissingGroups, len(fields), numFields)
	}

	st, err := parseCardsGroup(tarock.UpperASCII(fields[0]))
	if err != nil {
		return tarock.GameState{}, err
	}

	if err := parseContractGroup(tarock.UpperASCII(fields[1]), &st.Players); err != nil {
		return tarock.GameState{}, err
	}

	if err := parseCallsGroup(tarock.UpperASCII(fields[2]), &st.Players); err != nil {
		return tarock.GameState{}, err
	}

	st.SmallBeatsBig, err = parseFlag(fields[3])
	if err != nil {
		return tarock.GameState{}, err
	}

	st.Reserved = fields[4]
	return st, nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(line string) tarock.GameState {
	st, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return st
}

// parseCardsGroup decodes "T0/T1#H0/S0#H1/S1#H2/S2#H3/S3#ST".
func parseCardsGroup(field string) (tarock.GameState, error) {
	re := cardsGroupPattern()
	m := re.FindStringSubmatch(field)
	if m == nil {
		return tarock.GameState{}, fmt.Errorf("%w: %q", ErrInvalidCardsGroup, field)
	}
	capture := func(name string) string {
		return m[re.SubexpIndex(name)]
	}
	decode := func(name string, capacity int) (tarock.Collection, error) {
		c, err := tarock.ParseCollection(capacity, capture(name))
		if err != nil {
			return tarock.Collection{}, fmt.Errorf("cards group %s: %w", name, err)
		}
		return c, nil
	}

	var st tarock.GameState
	var err error
	if st.Talon[0], err = decode(groupTalon0, tarock.TalonSize); err != nil {
		return tarock.GameState{}, err
	}
	if st.Talon[1], err = decode(groupTalon1, tarock.TalonSize); err != nil {
		return tarock.GameState{}, err
	}
	for seat := range st.Players {
		p := &st.Players[seat]
		if p.Hand, err = decode(handGroup(seat), tarock.HandSize); err != nil {
			return tarock.GameState{}, err
		}
		if p.Tricks, err = decode(tricksGroup(seat), tarock.DeckSize); err != nil {
			return tarock.GameState{}, err
		}
	}
	if st.Trick, err = decode(groupTrick, tarock.TrickSize); err != nil {
		return tarock.GameState{}, err
	}
	return st, nil
}

// parseContractGroup decodes "(<contract><player>){1,4}<king><teammate><talon>"
// and writes the contract onto every declaring player. King, teammate and talon
// belong to the declaring side and are copied to each declarer.
func parseContractGroup(field string, players *[tarock.NumPlayers]tarock.Player) error {
	re := contractGroupPattern()
	m := re.FindStringSubmatch(field)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrInvalidContractGroup, field)
	}

	king := tarock.NoCard
	if s := m[re.SubexpIndex("king")]; s != "-" {
		card, err := tarock.ParseCard(s)
		if err != nil {
			return fmt.Errorf("called king: %w", err)
		}
		king = card
	}

	teammate := 0
	if s := m[re.SubexpIndex("teammate")]; s != "-" {
		seat, err := parseSeat(s)
		if err != nil {
			return fmt.Errorf("teammate: %w", err)
		}
		teammate = seat
	}

	talon := parseTalon(m[re.SubexpIndex("talon")])

	for _, pair := range contractPairPattern().FindAllStringSubmatch(m[re.SubexpIndex("pairs")], -1) {
		contract, err := tarock.ParseContract(pair[1])
		if err != nil {
			return err
		}
		seat, err := parseSeat(pair[2])
		if err != nil {
			return fmt.Errorf("contract %s: %w", contract, err)
		}
		calls := &players[seat-1].Calls
		calls.Contract = contract
		calls.CalledKing = king
		calls.Teammate = teammate
		calls.TakenTalon = talon
	}
	return nil
}

// parseSeat converts a 1-based player digit and checks its range.
func parseSeat(s string) (int, error) {
	seat, err := strconv.Atoi(s)
	if err != nil || seat < 1 || seat > tarock.NumPlayers {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayerIndex, s)
	}
	return seat, nil
}

func parseTalon(s string) tarock.Talon {
	switch s {
	case "1":
		return tarock.TalonFirst
	case "2":
		return tarock.TalonSecond
	case "12":
		return tarock.TalonBoth
	default:
		return tarock.TalonNone
	}
}

// parseCallsGroup decodes four "/"-separated call fields, one per player.
func parseCallsGroup(field string, players *[tarock.NumPlayers]tarock.Player) error {
	parts := strings.Split(field, "/")
	if len(parts) != tarock.NumPlayers {
		return fmt.Errorf("%w: %q has %d fields, want %d", ErrInvalidCallsGroup, field, len(parts), tarock.NumPlayers)
	}
	for seat, part := range parts {
		if !callFieldPattern().MatchString(part) {
			return fmt.Errorf("%w: player %d %q", ErrInvalidCall, seat, part)
		}
		calls := &players[seat].Calls
		for _, ch := range part {
			switch ch {
			case '1':
				calls.Pagat = true
			case '2':
				calls.Uhu = true
			case '3':
				calls.Pelikan = true
			case '4':
				calls.Quapil = true
			case 'T':
				calls.Trull = true
			case 'U':
				calls.Ultimo = true
			case 'K':
				calls.Kings = true
			case 'V':
				calls.Valat = true
			}
		}
	}
	return nil
}

func parseFlag(field string) (bool, error) {
	switch field {
	case "J", "j":
		return true, nil
	case "-":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidFlag, field)
	}
}
