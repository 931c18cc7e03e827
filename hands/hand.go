package hands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lazharichir/handscore/cards"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand is built from anything but five cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// Hand is an immutable sequence of exactly five cards. Duplicate cards are
// not rejected; keeping the deal physically valid is up to the dealer.
type Hand struct {
	cards [HandSize]cards.Card
}

// NewHand creates a hand from exactly five cards, in the given order
func NewHand(cs ...cards.Card) (Hand, error) {
	if len(cs) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cs), HandSize)
	}

	var h Hand
	copy(h.cards[:], cs)
	return h, nil
}

// MustHand is like NewHand but panics on error
func MustHand(cs ...cards.Card) Hand {
	h, err := NewHand(cs...)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseHand parses five card labels into a hand
func ParseHand(labels ...string) (Hand, error) {
	cs, err := cards.ParseCards(labels...)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cs...)
}

// Cards returns a copy of the hand's cards
func (h Hand) Cards() cards.Cards {
	out := make(cards.Cards, HandSize)
	copy(out, h.cards[:])
	return out
}

// Card returns the card at position i
func (h Hand) Card(i int) cards.Card {
	return h.cards[i]
}

// Sort returns a new hand ordered by suit, then rank
func (h Hand) Sort() Hand {
	sorted := h
	slices.SortStableFunc(sorted.cards[:], func(a, b cards.Card) int {
		return a.Compare(b)
	})
	return sorted
}

// SortByRank returns a new hand ordered by rank only, weakest first.
// Cards of equal rank keep their relative order.
func (h Hand) SortByRank() Hand {
	sorted := h
	slices.SortStableFunc(sorted.cards[:], func(a, b cards.Card) int {
		return a.Rank.Precedence() - b.Rank.Precedence()
	})
	return sorted
}

// String returns the suit-then-rank codes of the cards, e.g. "S10 SJ SQ SK SA"
func (h Hand) String() string {
	return strings.Join(cards.Cards(h.cards[:]).Codes(), " ")
}
