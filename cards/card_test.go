package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Rank then suit
		{"Ace of Spades Unicode", "A♠", Card{Suit: Spades, Rank: Ace}, false},
		{"Ace of Spades lowercase", "As", Card{Suit: Spades, Rank: Ace}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Rank: Ace}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Suit: Hearts, Rank: Ten}, false},
		{"Ten of Hearts letter", "Th", Card{Suit: Hearts, Rank: Ten}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Suit: Diamonds, Rank: Queen}, false},
		{"Queen of Diamonds lowercase", "Qd", Card{Suit: Diamonds, Rank: Queen}, false},
		{"Two of Clubs Unicode", "2♣", Card{Suit: Clubs, Rank: Two}, false},
		{"Two of Clubs uppercase", "2C", Card{Suit: Clubs, Rank: Two}, false},
		{"Input with mixed case", "aS", Card{Suit: Spades, Rank: Ace}, false},

		// Suit then rank
		{"Spades Ten code", "S10", Card{Suit: Spades, Rank: Ten}, false},
		{"Hearts Ace code", "HA", Card{Suit: Hearts, Rank: Ace}, false},
		{"Diamonds King code", "DK", Card{Suit: Diamonds, Rank: King}, false},
		{"Clubs Two code", "C2", Card{Suit: Clubs, Rank: Two}, false},
		{"Lowercase code", "sj", Card{Suit: Spades, Rank: Jack}, false},

		// Invalid inputs
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid rank", "11S", Card{}, true},
		{"Invalid format", "XX", Card{}, true},
		{"Reverse order Unicode", "♠A", Card{}, true},
		{"Special characters", "A$", Card{}, true},
		{"Number too large", "100S", Card{}, true},
		{"Wildcard", "W", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err, "Parse(%q) should return an error", tt.input)
				require.ErrorIs(t, err, ErrInvalidCard)
			} else {
				require.NoError(t, err, "Parse(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "Parse(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestParse_RoundTripsEveryCard(t *testing.T) {
	for _, c := range NewDeck() {
		fromCode, err := Parse(c.Code())
		require.NoError(t, err)
		assert.Equal(t, c, fromCode)

		fromString, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, fromString)
	}
}

func TestCard_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want int
	}{
		{"same card", NewCard(Hearts, Ten), NewCard(Hearts, Ten), 0},
		{"same suit higher rank", NewCard(Hearts, Ace), NewCard(Hearts, Two), 1},
		{"same suit lower rank", NewCard(Clubs, Three), NewCard(Clubs, Four), -1},
		{"suit beats rank", NewCard(Spades, Two), NewCard(Hearts, Ace), -1},
		{"later suit sorts after", NewCard(Clubs, Two), NewCard(Diamonds, Ace), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "10♠", NewCard(Spades, Ten).String())
	assert.Equal(t, "A♥", NewCard(Hearts, Ace).String())
	assert.Equal(t, "S10", NewCard(Spades, Ten).Code())
	assert.Equal(t, "CQ", NewCard(Clubs, Queen).Code())
}

func TestRank_Precedence(t *testing.T) {
	for i, r := range Ranks {
		assert.Equal(t, i, r.Precedence())
	}
	assert.Equal(t, 0, Two.Precedence())
	assert.Equal(t, 12, Ace.Precedence())
}

func TestSuit_Precedence(t *testing.T) {
	assert.Equal(t, []string{"S", "H", "D", "C"}, []string{
		Suits[0].Letter(), Suits[1].Letter(), Suits[2].Letter(), Suits[3].Letter(),
	})
	for i, s := range Suits {
		assert.Equal(t, i, s.Precedence())
	}
}

func TestCards_String(t *testing.T) {
	cs := MustParseCards("AC", "2D")

	assert.Equal(t, "A♣ 2♦", cs.String())
	assert.Equal(t, []string{"CA", "D2"}, cs.Codes())
}

func TestParseCards_Error(t *testing.T) {
	_, err := ParseCards("AS", "ZZ")
	assert.ErrorIs(t, err, ErrInvalidCard)
}
