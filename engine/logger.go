package engine

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// SearchLogEntry is one iterative-deepening iteration (or root event)
// worth of diagnostic data.
type SearchLogEntry struct {
	Event    string // "iteration" or "final"
	Depth    int
	Move     string
	Score    int
	Nodes    int64
	Elapsed  time.Duration
	TTProbes int64
	TTHits   int64
}

// Logger is a structured, non-blocking search logger: Log enqueues and
// returns immediately, a single background goroutine drains the queue
// into zerolog so queued entries are written off the search thread. When
// the queue is full, Log drops the entry and writes a one-line warning to
// the sink directly from the caller's goroutine.
// Grounded on the teacher's file logger (engine/logger.go), with
// zerolog in place of hand-rolled string formatting.
type Logger struct {
	zl    zerolog.Logger
	queue chan SearchLogEntry
	done  chan struct{}
}

// NewLogger builds a Logger writing structured JSON lines to w.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{
		zl:    zerolog.New(w).With().Timestamp().Logger(),
		queue: make(chan SearchLogEntry, 256),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

// Log enqueues entry for asynchronous logging. If the queue is full the
// entry is dropped rather than blocking the search thread.
func (l *Logger) Log(entry SearchLogEntry) {
	if l == nil {
		return
	}
	select {
	case l.queue <- entry:
	default:
		l.zl.Warn().Msg("search log queue full, dropping entry")
	}
}

// Close drains remaining entries and stops the background goroutine.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	close(l.queue)
	<-l.done
}

func (l *Logger) run() {
	for e := range l.queue {
		l.zl.Info().
			Str("event", e.Event).
			Int("depth", e.Depth).
			Str("move", e.Move).
			Int("score", e.Score).
			Int64("nodes", e.Nodes).
			Dur("elapsed", e.Elapsed).
			Int64("tt_probes", e.TTProbes).
			Int64("tt_hits", e.TTHits).
			Msg("search")
	}
	close(l.done)
}
