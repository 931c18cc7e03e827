package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	require.Len(t, deck, 52)
	assert.Equal(t, Card{Suit: Spades, Rank: Two}, deck[0])
	assert.Equal(t, Card{Suit: Spades, Rank: Ace}, deck[12])
	assert.Equal(t, Card{Suit: Hearts, Rank: Two}, deck[13])
	assert.Equal(t, Card{Suit: Clubs, Rank: Ace}, deck[51])

	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestNewDeck_IsSortedByCardOrder(t *testing.T) {
	deck := NewDeck()
	for i := 1; i < len(deck); i++ {
		assert.True(t, deck[i-1].Less(deck[i]), "%s should sort before %s", deck[i-1], deck[i])
	}
}

func TestShuffleDeck(t *testing.T) {
	originalDeck := NewDeck()
	shuffledDeck := ShuffleDeck(originalDeck)

	require.Len(t, shuffledDeck, len(originalDeck))
	assert.ElementsMatch(t, originalDeck, shuffledDeck)
	assert.Equal(t, NewDeck(), originalDeck, "original deck must not be modified")
}

func TestShuffleDeckWith_IsDeterministic(t *testing.T) {
	a := ShuffleDeckWith(rand.New(rand.NewSource(42)), NewDeck())
	b := ShuffleDeckWith(rand.New(rand.NewSource(42)), NewDeck())

	assert.Equal(t, a, b)
	assert.NotEqual(t, NewDeck(), a)
}

func TestDealCards(t *testing.T) {
	deck := NewDeck()
	count := 5

	dealtCards, remainingDeck := DealCards(deck, count)

	assert.Len(t, dealtCards, count)
	assert.Len(t, remainingDeck, len(deck)-count)
	assert.Equal(t, deck[:count], dealtCards)
}

func TestDealCards_MoreThanAvailable(t *testing.T) {
	deck := NewDeck()[:3]

	dealtCards, remainingDeck := DealCards(deck, 5)

	assert.Len(t, dealtCards, 3)
	assert.Empty(t, remainingDeck)
}
