package runtime

import (
	"github.com/yeajay0001/dquest/internal/debug"
)

// Level classifies observed events.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Event is a diagnostic emitted by a connection: a registry lookup
// miss, a failed statement, a seeding failure. Events are advisory;
// operation results are reported through error returns.
type Event struct {
	Level     Level
	Model     string
	Message   string
	Statement string
	Err       error
}

// Observer receives diagnostic events. Implementations must be safe
// for concurrent use.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(ev Event) { f(ev) }

// logObserver is the default observer, forwarding events to the debug
// logger.
func logObserver(ev Event) {
	args := []any{"model", ev.Model}
	if ev.Statement != "" {
		args = append(args, "statement", ev.Statement)
	}
	if ev.Err != nil {
		args = append(args, "error", ev.Err)
	}

	switch ev.Level {
	case LevelWarn:
		debug.Warn(ev.Message, args...)
	case LevelError:
		debug.Error(ev.Message, args...)
	default:
		debug.Info(ev.Message, args...)
	}
}
