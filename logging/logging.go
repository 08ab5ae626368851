package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at a console writer and applies
// level. An unknown level falls back to info and is reported.
func Setup(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: w != io.Writer(os.Stderr)}).
		With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if err != nil {
		log.Warn().Err(err).Str("level", level).Msg("unknown log level, using info")
	}
	return log.Logger
}

// For returns a child of the global logger tagged with a component name.
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
