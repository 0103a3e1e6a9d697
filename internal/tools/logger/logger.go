package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the root logger. Unknown or empty levels fall back to info.
func New(level string) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	log := zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "travel-portal").
		Logger()

	return &log
}
