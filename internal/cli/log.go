// Package cli implements the drawkit command-line interface.
//
// The commands draw diagram documents, print element outlines, browse a
// document interactively and serve the same operations over HTTP. The CLI
// is built with cobra; logging uses charmbracelet/log.
//
// # Commands
//
//   - render: write SVG, PNG, PDF or DOT output for a document
//   - paths: print the outline path and bounds of every element
//   - inspect: browse elements and their renderers in a terminal UI
//   - serve: expose render and paths over HTTP
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per renderer dispatch. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, with short
// "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a command. lap logs intermediate steps at debug level,
// done logs the final line at info level. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
	last   time.Time
}

func newProgress(l *log.Logger) *progress {
	now := time.Now()
	return &progress{logger: l, start: now, last: now}
}

// lap logs msg with the time since the previous lap.
func (p *progress) lap(msg string, keyvals ...any) {
	now := time.Now()
	p.logger.Debug(msg, append(keyvals, "took", now.Sub(p.last).Round(time.Microsecond))...)
	p.last = now
}

// done logs msg with the total time, e.g.
// "INFO rendered formats=2 cached=false elapsed=12ms".
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
