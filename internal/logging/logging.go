// Package logging builds the structured logger shared by both binaries.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Debug lowers the level from WARN
// to DEBUG. Timestamps are dropped; each line belongs to one short-lived run.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
