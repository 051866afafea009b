package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// InitLogger builds the process logger. level is a zerolog level name ("debug", "info", ...);
// an unknown or empty level falls back to info.
func InitLogger(level string) *zerolog.Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}, level)
}

func newLogger(out io.Writer, level string) *zerolog.Logger {
	logger := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
