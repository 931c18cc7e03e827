package hands

import (
	"testing"

	"github.com/lazharichir/handscore/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples_OnePerCategory(t *testing.T) {
	examples := Examples()
	require.Len(t, examples, len(Categories))

	for i, ex := range examples {
		assert.Equal(t, Categories[i], ex.Category)
	}
}

func TestExamples_Hands(t *testing.T) {
	want := map[Category][]string{
		RoyalFlush:    {"S10", "SJ", "SQ", "SK", "SA"},
		StraightFlush: {"S2", "S3", "S4", "S5", "S6"},
		FourOfAKind:   {"S2", "SA", "HA", "DA", "CA"},
		FullHouse:     {"SA", "HA", "DA", "SK", "HK"},
		Flush:         {"S2", "S4", "S6", "S8", "S10"},
		Straight:      {"H2", "S3", "S4", "S5", "S6"},
		ThreeOfAKind:  {"S2", "S3", "SA", "HA", "DA"},
		TwoPair:       {"S2", "SA", "SK", "HA", "HK"},
		OnePair:       {"SQ", "H4", "H9", "SA", "HA"},
		HighCard:      {"SQ", "H4", "H9", "S7", "SA"},
	}

	for _, ex := range Examples() {
		t.Run(ex.Category.String(), func(t *testing.T) {
			assert.Equal(t, cards.MustParseCards(want[ex.Category]...), ex.Hand.Cards())
		})
	}
}

func TestRunExamples_AllCorrect(t *testing.T) {
	for _, res := range RunExamples() {
		assert.True(t, res.Correct, "%s classified as %s", res.Hand, res.Got)
		assert.Equal(t, res.Category, res.Got)
	}
}
