// Package xlog wraps log/slog with the trace level and level-name
// formatting the demo binary and tests share, so every package logs
// through one configured handler instead of ad hoc fmt.Fprintf calls.
package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
	LevelFatal: "FATAL",
}

// Logger is the process-wide default, writing to stderr at Info level
// until SetOutput or SetLevel is called.
var Logger *xLogger

type xLogger struct {
	*slog.Logger
	addSource bool
	level     *slog.LevelVar
}

func init() {
	Logger = &xLogger{level: new(slog.LevelVar)}
	Logger.SetLevel(slog.LevelInfo)
	Logger.SetOutput(os.Stderr)
}

func (l *xLogger) SetLevel(v slog.Level) { l.level.Set(v) }

func (l *xLogger) AddSource(add bool) { l.addSource = add }

func (l *xLogger) SetOutput(w io.Writer) {
	l.Logger = slog.New(slog.NewTextHandler(w, l.handlerOptions())).With("pid", os.Getpid())
	slog.SetDefault(l.Logger)
}

func (l *xLogger) handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource: l.addSource,
		Level:     l.level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				label, ok := levelNames[level]
				if !ok {
					label = level.String()
				}
				a.Value = slog.StringValue(label)
			}
			return a
		},
	}
}

// Trace logs at LevelTrace, below Debug.
func (l *xLogger) Trace(msg string, args ...any) {
	l.Logger.Log(context.Background(), LevelTrace, msg, args...)
}
