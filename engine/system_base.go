package engine

import "github.com/rs/zerolog"

// System is a unit of per-tick logic
// The world is passed on every call; systems keep no reference to global state
type System interface {
	// Name identifies the system in logs
	Name() string

	// Update runs the system once; it must not block
	Update(w *World)
}

// LoggerAware systems receive a named sub-logger when registered with a Scheduler
type LoggerAware interface {
	SetLogger(log zerolog.Logger)
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	Log zerolog.Logger
}

// NewSystemBase initializes base dependency with a disabled logger
// Call once in system constructor
func NewSystemBase() SystemBase {
	return SystemBase{Log: zerolog.Nop()}
}

// SetLogger implements LoggerAware
func (b *SystemBase) SetLogger(log zerolog.Logger) {
	b.Log = log
}

// systemFunc adapts a plain function to System
type systemFunc struct {
	name string
	fn   func(w *World)
}

// SystemFunc wraps fn as a named System
func SystemFunc(name string, fn func(w *World)) System {
	return &systemFunc{name: name, fn: fn}
}

func (s *systemFunc) Name() string { return s.name }

func (s *systemFunc) Update(w *World) { s.fn(w) }
