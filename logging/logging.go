package logging

import (
	"io"
	"os"
	"strings"

	"github.com/lazharichir/handscore/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var writer io.Writer = os.Stdout

// Init configures the global zerolog logger from cfg, writing to out.
// Unknown levels fall back to info.
func Init(cfg config.LogConfig, out io.Writer) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	writer = out
	var output io.Writer = out
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Writer returns the raw destination of the global logger, for loggers that
// are not zerolog based.
func Writer() io.Writer {
	return writer
}
