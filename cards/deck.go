package cards

import (
	"math/rand"
	"time"
)

// NewDeck creates a standard deck of 52 cards, suits outer in precedence
// order and ranks inner from Two to Ace.
func NewDeck() Cards {
	deck := make(Cards, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of deck seeded from the clock
func ShuffleDeck(deck Cards) Cards {
	return ShuffleDeckWith(rand.New(rand.NewSource(time.Now().UnixNano())), deck)
}

// ShuffleDeckWith returns a copy of deck shuffled with r
func ShuffleDeckWith(r *rand.Rand, deck Cards) Cards {
	shuffled := make(Cards, len(deck))
	copy(shuffled, deck)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// DealCards deals count cards and returns them with the remaining deck
func DealCards(deck Cards, count int) (Cards, Cards) {
	if count > len(deck) {
		count = len(deck)
	}

	dealtCards := make(Cards, count)
	copy(dealtCards, deck[:count])

	return dealtCards, deck[count:]
}
