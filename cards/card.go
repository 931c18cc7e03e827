package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card label cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. The zero value is Spades.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in precedence order
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

var (
	suitLetters = [...]string{"S", "H", "D", "C"}
	suitSymbols = [...]string{"♠", "♥", "♦", "♣"}
)

// Precedence returns the suit's sort index, Spades first.
func (s Suit) Precedence() int {
	return int(s)
}

// Letter returns the one letter code of the suit (S, H, D, C)
func (s Suit) Letter() string {
	if int(s) >= len(suitLetters) {
		return "?"
	}
	return suitLetters[s]
}

func (s Suit) String() string {
	if int(s) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[s]
}

// Rank represents a card rank, Two lowest and Ace highest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from weakest to strongest
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankSymbols = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Precedence returns the rank strength, 0 for Two up to 12 for Ace.
func (r Rank) Precedence() int {
	return int(r)
}

func (r Rank) String() string {
	if int(r) >= len(rankSymbols) {
		return "?"
	}
	return rankSymbols[r]
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card from a suit and a rank
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Compare orders cards by suit precedence first, then by rank precedence.
// It returns -1, 0 or 1.
func (c Card) Compare(other Card) int {
	if c.Suit != other.Suit {
		return compareInt(c.Suit.Precedence(), other.Suit.Precedence())
	}
	return compareInt(c.Rank.Precedence(), other.Rank.Precedence())
}

// Less reports whether c sorts before other
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// String returns the display form of a card, e.g. "10♠"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code returns the suit-then-rank label of a card, e.g. "S10"
func (c Card) Code() string {
	return c.Suit.Letter() + c.Rank.String()
}

// Parse creates a card from a string representation.
// Both rank-then-suit ("10♠", "10s", "AH") and suit-then-rank ("S10", "HA")
// forms are accepted. Rank letters are case insensitive.
func Parse(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q is too short", ErrInvalidCard, s)
	}

	// rank then suit
	for i, sym := range suitSymbols {
		if strings.HasSuffix(s, sym) {
			return withRank(Suits[i], strings.TrimSuffix(s, sym), s)
		}
	}
	if suit, ok := suitFromLetter(s[len(s)-1]); ok {
		if rank, err := parseRank(s[:len(s)-1]); err == nil {
			return Card{Suit: suit, Rank: rank}, nil
		}
	}

	// suit then rank
	if suit, ok := suitFromLetter(s[0]); ok {
		return withRank(suit, s[1:], s)
	}

	return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
}

func withRank(suit Suit, rank string, input string) (Card, error) {
	r, err := parseRank(rank)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, input, err)
	}
	return Card{Suit: suit, Rank: r}, nil
}

func suitFromLetter(b byte) (Suit, bool) {
	switch b {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	}
	return 0, false
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "10", "T":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
