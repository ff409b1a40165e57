package tarock

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		want  Card
	}{
		{".", Unknown},
		{"HK", HK},
		{"HD", HD},
		{"HP", HP},
		{"HB", HB},
		{"H1", H1},
		{"H4", H4},
		{"PK", PK},
		{"P10", P10},
		{"P7", P7},
		{"KK", KK},
		{"KB", KB},
		{"K1", K1},
		{"K4", K4},
		{"XK", XK},
		{"X10", X10},
		{"X8", X8},
		{"T1", T1},
		{"T9", T9},
		{"T10", T10},
		{"T19", T19},
		{"T22", T22},
		{"hk", HK},
		{"x10", X10},
		{"t21", T21},
		{"kP", KP},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCardRejectsUnknownCodes(t *testing.T) {
	for _, input := range []string{"T23", "T0", "asd", "4564", "X1", "X4", "H10", "H7", "-", "", "HK ", "T01"} {
		_, err := ParseCard(input)
		assert.True(t, errors.Is(err, ErrUnknownCard), "input %q: %v", input, err)
	}
}

func TestCardCodesRoundTrip(t *testing.T) {
	seen := make(map[string]Card)
	for _, c := range append(AllCards(), Unknown) {
		code := c.String()
		if prev, ok := seen[code]; ok {
			t.Fatalf("code %q used by %d and %d", code, prev, c)
		}
		seen[code] = c

		upper, err := ParseCard(code)
		require.NoError(t, err)
		lower, err := ParseCard(strings.ToLower(code))
		require.NoError(t, err)
		assert.Equal(t, c, upper)
		assert.Equal(t, c, lower)
	}
	assert.Len(t, seen, DeckSize+1)
}

func TestCardStructure(t *testing.T) {
	assert.Len(t, AllCards(), DeckSize)

	assert.Equal(t, Hearts, H3.Suit())
	assert.Equal(t, Rank(3), H3.Rank())
	assert.Equal(t, Spades, P10.Suit())
	assert.Equal(t, Rank(10), P10.Rank())
	assert.Equal(t, Diamonds, KD.Suit())
	assert.Equal(t, Queen, KD.Rank())
	assert.Equal(t, Clubs, XP.Suit())
	assert.Equal(t, Knight, XP.Rank())
	assert.Equal(t, Trumps, T22.Suit())
	assert.Equal(t, Rank(22), T22.Rank())
	assert.True(t, King.IsFace())
	assert.False(t, Rank(4).IsFace())

	assert.True(t, T1.IsTrump())
	assert.False(t, HK.IsTrump())
	assert.True(t, Hearts.IsRed())
	assert.False(t, Clubs.IsRed())

	assert.False(t, Unknown.IsKnown())
	assert.False(t, NoCard.IsKnown())
	assert.Equal(t, NoSuit, Unknown.Suit())
	assert.Equal(t, ".", Unknown.String())
	assert.Equal(t, "-", NoCard.String())
}

func TestParseCardDeterministic(t *testing.T) {
	for _, c := range AllCards() {
		first, err := ParseCard(c.String())
		require.NoError(t, err)
		second, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestCaseFoldingIsASCIIOnly(t *testing.T) {
	assert.Equal(t, "HK X8 T22", UpperASCII("hk x8 t22"))
	assert.Equal(t, "H\u212a\u017fR", UpperASCII("h\u212a\u017fr"))
	assert.Equal(t, "SPD", UpperASCII("SPD"))

	_, err := ParseCard("h\u212a")
	assert.True(t, errors.Is(err, ErrUnknownCard))
	_, err = ParseContract("\u017fr")
	assert.True(t, errors.Is(err, ErrUnknownContract))
	_, err = ParseContract("\u017fd")
	assert.True(t, errors.Is(err, ErrUnknownContract))
}
