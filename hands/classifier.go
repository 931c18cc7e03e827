package hands

import (
	"slices"

	"github.com/lazharichir/handscore/cards"
)

// Classify returns the strongest category the hand satisfies. The tests run
// from strongest to weakest and the first match wins, so a straight flush is
// never reported as a flush or a straight.
func Classify(h Hand) Category {
	sorted := h.SortByRank()

	switch {
	case isRoyalFlush(sorted):
		return RoyalFlush
	case isStraight(sorted) && isFlush(sorted):
		return StraightFlush
	case isFourOfAKind(sorted):
		return FourOfAKind
	case isFullHouse(sorted):
		return FullHouse
	case isFlush(sorted):
		return Flush
	case isStraight(sorted):
		return Straight
	case isThreeOfAKind(sorted):
		return ThreeOfAKind
	case isTwoPair(sorted):
		return TwoPair
	case isOnePair(sorted):
		return OnePair
	default:
		return HighCard
	}
}

// Score returns the score of the hand's category
func Score(h Hand) int {
	return Classify(h).Score()
}

var royalRanks = [HandSize]cards.Rank{cards.Ten, cards.Jack, cards.Queen, cards.King, cards.Ace}

// isRoyalFlush expects a rank sorted hand
func isRoyalFlush(h Hand) bool {
	for i, r := range royalRanks {
		if h.cards[i].Rank != r {
			return false
		}
	}
	return isFlush(h)
}

// isFlush checks if all cards are of the same suit
func isFlush(h Hand) bool {
	suit := h.cards[0].Suit
	for _, c := range h.cards[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// isStraight checks for five consecutive ranks. The Ace only counts high.
func isStraight(h Hand) bool {
	var ranks [HandSize]int
	for i, c := range h.cards {
		ranks[i] = c.Rank.Precedence()
	}
	slices.Sort(ranks[:])

	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] != 1 {
			return false
		}
	}
	return true
}

// sameRank reports whether the n cards starting at position from share one rank
func sameRank(h Hand, from, n int) bool {
	r := h.cards[from].Rank
	for _, c := range h.cards[from+1 : from+n] {
		if c.Rank != r {
			return false
		}
	}
	return true
}

// hasRun reports whether n adjacent cards share a rank at any offset
func hasRun(h Hand, n int) bool {
	for from := 0; from+n <= HandSize; from++ {
		if sameRank(h, from, n) {
			return true
		}
	}
	return false
}

func isFourOfAKind(h Hand) bool {
	return hasRun(h, 4)
}

// isFullHouse accepts both the AAABB and the AABBB layouts
func isFullHouse(h Hand) bool {
	if h.cards[0].Rank == h.cards[HandSize-1].Rank {
		return false
	}
	return (sameRank(h, 0, 3) && sameRank(h, 3, 2)) ||
		(sameRank(h, 0, 2) && sameRank(h, 2, 3))
}

func isThreeOfAKind(h Hand) bool {
	return hasRun(h, 3)
}

// isTwoPair accepts pair-pair-kicker at either offset and pair-kicker-pair
func isTwoPair(h Hand) bool {
	for from := 0; from+4 <= HandSize; from++ {
		if sameRank(h, from, 2) && sameRank(h, from+2, 2) {
			return true
		}
	}
	return sameRank(h, 0, 2) && sameRank(h, 3, 2)
}

func isOnePair(h Hand) bool {
	return hasRun(h, 2)
}
