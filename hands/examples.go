package hands

import "github.com/lazharichir/handscore/cards"

// Example is a reference hand together with the category it must classify as
type Example struct {
	Category Category
	Hand     Hand
}

// ExampleResult is the outcome of classifying one example
type ExampleResult struct {
	Example
	Got     Category
	Correct bool
}

// Examples returns one reference hand per category, strongest first. The
// hands are drawn from the standard deck by position, so they only depend on
// the deck order.
func Examples() []Example {
	deck := cards.NewDeck()
	sameSuit := func(suit cards.Suit, ranks ...cards.Rank) []cards.Card {
		out := make([]cards.Card, len(ranks))
		for i, r := range ranks {
			out[i] = cards.NewCard(suit, r)
		}
		return out
	}
	sameRank := func(rank cards.Rank, suits ...cards.Suit) []cards.Card {
		out := make([]cards.Card, len(suits))
		for i, s := range suits {
			out[i] = cards.NewCard(s, rank)
		}
		return out
	}
	join := func(parts ...[]cards.Card) Hand {
		var all []cards.Card
		for _, p := range parts {
			all = append(all, p...)
		}
		return MustHand(all...)
	}

	ranks := cards.Ranks[:]
	suits := cards.Suits[:]

	everyOther := make([]cards.Rank, 0, HandSize)
	for i := 0; i < len(ranks) && len(everyOther) < HandSize; i += 2 {
		everyOther = append(everyOther, ranks[i])
	}

	return []Example{
		{RoyalFlush, join(sameSuit(cards.Spades, ranks[len(ranks)-5:]...))},
		{StraightFlush, join(sameSuit(cards.Spades, ranks[:5]...))},
		{FourOfAKind, join(deck[:1], sameRank(cards.Ace, suits...))},
		{FullHouse, join(sameRank(cards.Ace, suits[:3]...), sameRank(cards.King, suits[:2]...))},
		{Flush, join(sameSuit(cards.Spades, everyOther...))},
		{Straight, join(sameSuit(cards.Hearts, ranks[0]), sameSuit(cards.Spades, ranks[1:5]...))},
		{ThreeOfAKind, join(deck[:2], sameRank(cards.Ace, suits[:3]...))},
		{TwoPair, join(deck[:1],
			[]cards.Card{cards.NewCard(cards.Spades, cards.Ace), cards.NewCard(cards.Spades, cards.King)},
			[]cards.Card{cards.NewCard(cards.Hearts, cards.Ace), cards.NewCard(cards.Hearts, cards.King)},
		)},
		{OnePair, join([]cards.Card{deck[10], deck[15], deck[20]}, sameRank(cards.Ace, suits[:2]...))},
		{HighCard, join([]cards.Card{deck[10], deck[15], deck[20], deck[5], cards.NewCard(cards.Spades, cards.Ace)})},
	}
}

// RunExamples classifies every example and reports whether it matched
func RunExamples() []ExampleResult {
	examples := Examples()
	results := make([]ExampleResult, len(examples))
	for i, ex := range examples {
		got := Classify(ex.Hand)
		results[i] = ExampleResult{
			Example: ex,
			Got:     got,
			Correct: got == ex.Category,
		}
	}
	return results
}
