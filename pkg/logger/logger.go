package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sends the global logger to dest. The terminal belongs to the UI, so
// the client never logs to stdout.
func Init(dest, component string) (io.Closer, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	Use(f, component)

	return f, nil
}

// Console logs human readable lines to stderr.
func Console(component string) {
	Use(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}, component)
}

func Use(w io.Writer, component string) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

func SetLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
