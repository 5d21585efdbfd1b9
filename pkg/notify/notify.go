// Package notify implements the process-wide construction event notifier.
// Exactly one notifier exists per process; it is created lazily on first use
// and injected by reference into every component that emits events. Each
// event line goes to the process log and, once a sink is bound, to the
// presentation surface's log panel.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Notifier fans event strings out to a slog logger and an optional sink.
type Notifier struct {
	log   *slog.Logger
	level *slog.LevelVar

	mu   sync.Mutex
	sink func(string)
}

var (
	defaultOnce     sync.Once
	defaultNotifier *Notifier
)

// Default returns the process-wide notifier, creating it on first use. It is
// never reset or torn down.
func Default() *Notifier {
	defaultOnce.Do(func() {
		defaultNotifier = New(os.Stderr)
	})
	return defaultNotifier
}

// New creates a notifier writing text log lines to w. Used directly in tests;
// production code goes through Default.
func New(w io.Writer) *Notifier {
	level := new(slog.LevelVar)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Notifier{
		log:   slog.New(handler),
		level: level,
	}
}

// SetLevel adjusts the minimum level of the underlying logger.
func (n *Notifier) SetLevel(l slog.Level) {
	n.level.Set(l)
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Bind attaches the presentation sink. Only the first call takes effect;
// later calls are no-ops, so the sink can be rebound at most once after the
// notifier is created.
func (n *Notifier) Bind(sink func(string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sink == nil {
		n.sink = sink
	}
}

// Logf records one event. The formatted line is logged and forwarded to the
// bound sink with the log-panel prefix.
func (n *Notifier) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	n.log.Info(msg)

	n.mu.Lock()
	sink := n.sink
	n.mu.Unlock()
	if sink != nil {
		sink("[LOG]: " + msg)
	}
}
