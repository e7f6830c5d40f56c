// Package logger builds the zerolog loggers shared by the application.
// Every entry is a single JSON object with a "ts" field rendered in the configured location.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type tsHook struct {
	loc *time.Location
}

func (h tsHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("ts", time.Now().In(h.loc).Format(time.RFC3339Nano))
}

// New returns a JSON logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, loc *time.Location, level string) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).Hook(tsHook{loc: loc})
}
