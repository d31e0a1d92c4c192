// Package notify carries user-facing notices from lifecycle services to
// whatever surface renders them (terminal, logs). Services never print
// directly; they emit notices so callers stay in control of presentation.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a single user-facing message, the moral equivalent of a toast.
type Notice struct {
	Level   Level
	Title   string
	Message string
}

// Notifier receives user-facing notices.
type Notifier interface {
	Notify(n Notice)
}

// Convenience emitters so call sites read like the action they report.

func Success(n Notifier, title, message string) {
	n.Notify(Notice{Level: LevelSuccess, Title: title, Message: message})
}

func Info(n Notifier, title, message string) {
	n.Notify(Notice{Level: LevelInfo, Title: title, Message: message})
}

func Warn(n Notifier, title, message string) {
	n.Notify(Notice{Level: LevelWarning, Title: title, Message: message})
}

func Error(n Notifier, title, message string) {
	n.Notify(Notice{Level: LevelError, Title: title, Message: message})
}

// Writer renders notices as single lines to an io.Writer and mirrors them to
// the logger at a matching level.
type Writer struct {
	Out    io.Writer
	Logger *slog.Logger
}

func NewWriter(out io.Writer, logger *slog.Logger) *Writer {
	return &Writer{Out: out, Logger: logger}
}

func (w *Writer) Notify(n Notice) {
	if w.Out != nil {
		fmt.Fprintf(w.Out, "[%s] %s: %s\n", n.Level, n.Title, n.Message)
	}
	if w.Logger == nil {
		return
	}
	switch n.Level {
	case LevelError:
		w.Logger.Error(n.Title, "detail", n.Message)
	case LevelWarning:
		w.Logger.Warn(n.Title, "detail", n.Message)
	default:
		w.Logger.Info(n.Title, "detail", n.Message)
	}
}

// Recorder captures notices for inspection in tests.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Reset clears recorded notices.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}

// Discard drops every notice. Useful for background pollers where surfacing
// a transient fetch failure on every tick would be noise.
type Discard struct{}

func (Discard) Notify(Notice) {}
