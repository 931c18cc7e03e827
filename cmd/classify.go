package cmd

import (
	"github.com/lazharichir/handscore/hands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "classify CARD CARD CARD CARD CARD",
		Short:   "Classify five cards",
		Example: "  handscore classify S10 SJ SQ SK SA\n  handscore classify 2h 3s 4s 5s 6s",
		Args:    cobra.ExactArgs(hands.HandSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hands.ParseHand(args...)
			if err != nil {
				return err
			}
			log.Debug().Str("hand", h.String()).Msg("classifying hand")
			return renderClassification(cmd.OutOrStdout(), h)
		},
	}
}
