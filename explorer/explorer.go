// Package explorer holds the selection state that drives the resolution
// engine: the current scale, the transposition index and the listeners
// notified when either changes.
package explorer

import (
	"fmt"
	"sync"

	"github.com/RyanBlaney/sonido-escala/logging"
	"github.com/RyanBlaney/sonido-escala/theory"
)

// Listener receives the new state after every change.
type Listener func(State)

type listenerEntry struct {
	id int
	fn Listener
}

// Explorer is the selection source. Every mutation that changes the state
// notifies the registered listeners synchronously, in registration order.
type Explorer struct {
	mu        sync.Mutex
	state     State
	listeners []listenerEntry
	nextID    int

	resolveOpts []theory.Option
	logger      logging.Logger
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithResolveOptions forwards options to every theory.Resolve call.
func WithResolveOptions(opts ...theory.Option) Option {
	return func(e *Explorer) {
		e.resolveOpts = append(e.resolveOpts, opts...)
	}
}

// WithLogger sets the logger; the global logger is used otherwise.
func WithLogger(logger logging.Logger) Option {
	return func(e *Explorer) {
		e.logger = logger
	}
}

// New creates an explorer. An unknown scale in initial falls back to the
// default scale.
func New(initial State, opts ...Option) *Explorer {
	e := &Explorer{state: initial}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.GetGlobalLogger()
	}
	e.logger = e.logger.WithFields(logging.Fields{"component": "explorer"})

	if _, err := theory.LookupScale(e.state.ScaleID); err != nil {
		e.logger.Warn("unknown initial scale, using default", logging.Fields{"scale": e.state.ScaleID})
		e.state.ScaleID = theory.DefaultScale().Name
	}
	return e
}

// State returns the current selection.
func (e *Explorer) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// OnChange registers a listener and returns a func that removes it.
func (e *Explorer) OnChange(fn Listener) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetScale selects a catalog scale. Unknown identifiers are rejected.
func (e *Explorer) SetScale(id string) error {
	if _, err := theory.LookupScale(id); err != nil {
		return fmt.Errorf("select scale: %w", err)
	}
	e.update(func(s *State) { s.ScaleID = id })
	return nil
}

// SetIndex sets the transposition index.
func (e *Explorer) SetIndex(index int) {
	e.update(func(s *State) { s.Index = index })
}

// Step moves the transposition index by delta.
func (e *Explorer) Step(delta int) {
	e.update(func(s *State) { s.Index += delta })
}

// Restore replaces the whole state, e.g. after reading a state file.
func (e *Explorer) Restore(s State) {
	if _, err := theory.LookupScale(s.ScaleID); err != nil {
		s.ScaleID = theory.DefaultScale().Name
	}
	e.update(func(cur *State) { *cur = s })
}

// Click steps up when y is in the upper half of a display of the given
// height and down otherwise.
func (e *Explorer) Click(y, height float64) {
	if y < height/2 {
		e.Step(1)
	} else {
		e.Step(-1)
	}
}

// KeyPress steps up on "up" or "k" and down on "down" or "j". It reports
// whether the key was recognized.
func (e *Explorer) KeyPress(key string) bool {
	switch key {
	case "up", "k":
		e.Step(1)
	case "down", "j":
		e.Step(-1)
	default:
		return false
	}
	return true
}

// Resolve runs the resolution engine on the current state.
func (e *Explorer) Resolve() (theory.Resolution, error) {
	s := e.State()
	res, err := theory.Resolve(s.ScaleID, s.Index, e.resolveOpts...)
	if err != nil {
		e.logger.Error(err, "resolve failed", logging.Fields{"scale": s.ScaleID, "index": s.Index})
		return theory.Resolution{}, err
	}
	e.logger.Debug("resolved", logging.Fields{"scale": s.ScaleID, "index": s.Index, "key": res.KeyName})
	return res, nil
}

func (e *Explorer) update(mutate func(*State)) {
	e.mu.Lock()
	prev := e.state
	mutate(&e.state)
	next := e.state
	listeners := make([]Listener, len(e.listeners))
	for i, l := range e.listeners {
		listeners[i] = l.fn
	}
	e.mu.Unlock()

	if next == prev {
		return
	}
	e.logger.Debug("state changed", logging.Fields{"scale": next.ScaleID, "index": next.Index})
	for _, fn := range listeners {
		fn(next)
	}
}
