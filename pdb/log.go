package pdb

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// discard is the logger for people who did not give us one
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// logDest decides where to send output.
// "" throws it away, "stdout" and "stderr" are what they say and
// anything else is a file we append to.
func logDest(dest string) (io.Writer, error) {
	switch dest {
	case "":
		return io.Discard, nil
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// LogWhere makes a logger writing to dest, at a level like "info",
// in "text" or "json" format.
func LogWhere(dest, level, format string) (*slog.Logger, error) {
	w, err := logDest(dest)
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", dest, err)
	}
	return NewLogger(w, level, format)
}

// NewLogger is LogWhere once we have somewhere to write.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("log format %q: want text or json", format)
}
