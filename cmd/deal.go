package cmd

import (
	"math/rand"

	"github.com/lazharichir/handscore/cards"
	"github.com/lazharichir/handscore/hands"
	"github.com/spf13/cobra"
)

func newDealCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal five cards from a shuffled deck and classify them",
		RunE: func(cmd *cobra.Command, args []string) error {
			var deck cards.Cards
			if cmd.Flags().Changed("seed") {
				deck = cards.ShuffleDeckWith(rand.New(rand.NewSource(seed)), cards.NewDeck())
			} else {
				deck = cards.ShuffleDeck(cards.NewDeck())
			}
			dealt, _ := cards.DealCards(deck, hands.HandSize)

			h, err := hands.NewHand(dealt...)
			if err != nil {
				return err
			}
			return renderClassification(cmd.OutOrStdout(), h)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Shuffle seed (random when unset)")
	return cmd
}
