package signal

import (
	"sync"
	"sync/atomic"
)

// Handler is a callable bound to an Event carrying payloads of type T.
type Handler[T any] func(T)

// Unit is the payload type for events that carry no data.
// Fire such events with signal.Unit{}.
type Unit = struct{}

// entry is one registered handler. The registry holds the only long-lived
// reference; a Fire snapshot holds additional short-lived ones. The live
// flag is what lets a snapshot detect that an entry was unregistered after
// the snapshot was taken.
type entry[T any] struct {
	fn   Handler[T]
	live atomic.Bool
}

func newEntry[T any](fn Handler[T]) *entry[T] {
	en := &entry[T]{fn: fn}
	en.live.Store(true)
	return en
}

// Event is an ordered registry of handlers for payloads of type T.
// The zero value is ready to use. An Event must not be copied after first
// use.
//
// Insertion order is dispatch order; handlers are never reordered.
type Event[T any] struct {
	mu      sync.Mutex
	entries []*entry[T]
	binds   map[*Binding[T]]struct{}
	closed  bool
}

// NewEvent returns a new, empty Event.
func NewEvent[T any]() *Event[T] {
	return &Event[T]{binds: make(map[*Binding[T]]struct{})}
}

// PermanentBind appends fn to the registry for the remaining lifetime of
// the event. There is no way to unbind it short of Close.
func (e *Event[T]) PermanentBind(fn Handler[T]) {
	if fn == nil {
		panic("signal: nil handler")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		panic("signal: bind on closed event")
	}

	e.entries = append(e.entries, newEntry(fn))
}

// Bind appends fn to the registry and returns a Binding that owns the
// registration. Releasing the Binding unregisters fn; closing the event
// first leaves the Binding inert. Every call creates a fresh registry
// entry, even for an identical fn.
func (e *Event[T]) Bind(fn Handler[T]) *Binding[T] {
	if fn == nil {
		panic("signal: nil handler")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		panic("signal: bind on closed event")
	}

	if e.binds == nil {
		e.binds = make(map[*Binding[T]]struct{})
	}

	en := newEntry(fn)
	e.entries = append(e.entries, en)

	b := &Binding[T]{event: e, entry: en, valid: true}
	e.binds[b] = struct{}{}

	return b
}

// Fire synchronously invokes every handler registered at the moment of the
// call, in registration order, passing each the same value v.
//
// Dispatch iterates a snapshot, not the live registry: handlers released
// by an earlier handler in the same fire are skipped, and handlers bound
// during the fire first run on the next fire. A handler panic propagates
// to the caller and aborts the remaining snapshot.
func (e *Event[T]) Fire(v T) {
	e.mu.Lock()
	snapshot := make([]*entry[T], len(e.entries))
	copy(snapshot, e.entries)
	e.mu.Unlock()

	// The lock is not held while handlers run so they can bind and
	// release reentrantly.
	for _, en := range snapshot {
		if en.live.Load() {
			en.fn(v)
		}
	}
}

// Len reports the number of currently registered handlers.
func (e *Event[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.entries)
}

// Close unregisters all handlers and invalidates every outstanding
// Binding, whose later Release becomes a no-op. Close is idempotent.
// After Close, Fire does nothing and binding panics.
func (e *Event[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true

	for b := range e.binds {
		if !b.valid {
			panic("signal: tracked binding already invalid")
		}
		b.valid = false
	}
	e.binds = nil

	for _, en := range e.entries {
		en.live.Store(false)
	}
	e.entries = nil
}

// Binding is the scoped owner of one handler registration, produced only
// by Event.Bind. It transitions from valid to released exactly once,
// either through Release or through the event's Close.
//
// A Binding must not be copied; the unbind action belongs to one token.
type Binding[T any] struct {
	event *Event[T]
	entry *entry[T]
	valid bool // guarded by event.mu
}

// Release unregisters the associated handler. Only the first call takes
// effect; later calls, and calls after the event was closed, are no-ops.
// Safe to call from inside a handler, including the bound handler itself.
func (b *Binding[T]) Release() {
	e := b.event

	e.mu.Lock()
	defer e.mu.Unlock()

	if !b.valid {
		return
	}

	if _, ok := e.binds[b]; !ok {
		panic("signal: binding not tracked by its event")
	}
	delete(e.binds, b)
	b.valid = false

	if !b.entry.live.CompareAndSwap(true, false) {
		panic("signal: handler entry already unregistered")
	}

	for i, en := range e.entries {
		if en == b.entry {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			break
		}
	}
}

// Active reports whether the Binding still holds a registration.
func (b *Binding[T]) Active() bool {
	b.event.mu.Lock()
	defer b.event.mu.Unlock()

	return b.valid
}
