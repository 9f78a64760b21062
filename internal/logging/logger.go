package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tupsu-jy/star-retriever/internal/config"
)

// New builds the root logger. Development gets human readable console
// output; every other environment logs JSON lines.
func New(environment, level string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if environment == config.EnvironmentDev {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, level)
}

// NewWithWriter builds a logger writing to w at the given level.
// Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "star-retriever").
		Logger()
}
