package mogger

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrAlreadyInitialized is returned when a registry already holds a
	// logger.
	ErrAlreadyInitialized = errors.New("mogger: logger already initialized")
	// ErrNotInitialized is raised by Log before any logger is installed.
	ErrNotInitialized = errors.New("mogger: logger not initialized")
	// ErrNilLogger is returned when installing a nil logger.
	ErrNilLogger = errors.New("mogger: nil logger")
)

// State is the initialization state of a Registry.
type State int

const (
	Uninitialized State = iota
	Initialized
)

func (s State) String() string {
	if s == Initialized {
		return "initialized"
	}
	return "uninitialized"
}

// Registry is a write-once slot for a Mogger. The zero value is empty and
// ready to use. Once a logger is installed it is never replaced, so reads
// need no further synchronization.
type Registry struct {
	slot atomic.Pointer[Mogger]
}

// Install stores m if the registry is empty. Of any number of concurrent
// callers exactly one succeeds; the rest get ErrAlreadyInitialized.
func (r *Registry) Install(m *Mogger) error {
	if m == nil {
		return ErrNilLogger
	}
	if !r.slot.CompareAndSwap(nil, m) {
		return ErrAlreadyInitialized
	}
	return nil
}

// MustInstall is Install that panics on failure.
func (r *Registry) MustInstall(m *Mogger) {
	if err := r.Install(m); err != nil {
		panic(err)
	}
}

// Logger returns the installed logger, if any.
func (r *Registry) Logger() (*Mogger, bool) {
	m := r.slot.Load()
	return m, m != nil
}

// Log writes message through the installed logger. It panics with
// ErrNotInitialized when none is installed.
func (r *Registry) Log(level Level, message string) {
	m, ok := r.Logger()
	if !ok {
		panic(ErrNotInitialized)
	}
	m.Log(level, message)
}

func (r *Registry) State() State {
	if r.slot.Load() == nil {
		return Uninitialized
	}
	return Initialized
}

// global is the process-wide registry.
var global = new(Registry)

// Process returns the process-wide registry used by Init, Install and Log.
func Process() *Registry { return global }

// Init builds a logger and installs it process-wide. It panics with
// ErrAlreadyInitialized if a logger was installed before.
func Init(cfg Config, format Format, opts ...Option) *Mogger {
	m := New(cfg, format, opts...)
	global.MustInstall(m)
	return m
}

// InitDefault is Init with DefaultConfig and plain text output.
func InitDefault(opts ...Option) *Mogger {
	m := Default(opts...)
	global.MustInstall(m)
	return m
}

// Install stores m as the process-wide logger.
func Install(m *Mogger) error { return global.Install(m) }

// Global returns the process-wide logger, if one is installed.
func Global() (*Mogger, bool) { return global.Logger() }

// CurrentState reports whether a process-wide logger is installed.
func CurrentState() State { return global.State() }

// Log writes message through the process-wide logger. It panics with
// ErrNotInitialized when none is installed.
func Log(level Level, message string) { global.Log(level, message) }
