package main

import (
	"os"

	"github.com/lazharichir/handscore/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("handscore failed")
		os.Exit(1)
	}
}
