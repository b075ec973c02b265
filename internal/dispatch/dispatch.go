// Package dispatch implements listener registration and frame dispatch
// (C5 in SPEC_FULL.md): fixed-order callback firing at fseq boundaries,
// with per-listener error containment so one bad listener never blocks
// the rest.
//
// Grounded on the Observer-registration pattern in the teacher's
// internal/interfaces package (a short mutex-guarded slice, registered
// and fired from a single owning goroutine) and on
// original_source/pythontuio/dispatcher.py's _call_listener, which wraps
// every listener invocation so one raising callback does not stop the
// others from running.
package dispatch

import (
	"fmt"
	"sync"

	"github.com/halvarsson/go-tuio/internal/interfaces"
	"github.com/halvarsson/go-tuio/internal/profile"
	"github.com/halvarsson/go-tuio/internal/reconcile"
)

// Dispatcher holds the registered listeners and fires them in the fixed
// order required by spec.md §4.5: all adds, then all updates, then all
// removes, then refresh, once per FrameEvent.
type Dispatcher struct {
	mu        sync.Mutex
	listeners []interfaces.Listener
	observer  interfaces.Observer
}

// New builds a Dispatcher with no registered listeners. observer may be
// nil.
func New(observer interfaces.Observer) *Dispatcher {
	return &Dispatcher{observer: observer}
}

// Register adds a listener to the dispatch set. Safe to call concurrently
// with Dispatch; the mutex is held only for the duration of the slice
// append, not for dispatch itself.
func (d *Dispatcher) Register(l interfaces.Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, l)
}

// Unregister removes a previously registered listener, by identity.
func (d *Dispatcher) Unregister(l interfaces.Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch fires every registered listener for one FrameEvent, in the
// order: all added entities, then all updated, then all removed, then
// refresh(frame_time) exactly once. Listener panics are caught and
// surfaced as ObserveListenerError rather than stopping dispatch; listener
// methods have no error return.
func (d *Dispatcher) Dispatch(ev *reconcile.FrameEvent) {
	d.mu.Lock()
	listeners := make([]interfaces.Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.Unlock()

	for _, l := range listeners {
		for _, e := range ev.Added {
			d.fire(l, e, fireAdd)
		}
	}
	for _, l := range listeners {
		for _, e := range ev.Updated {
			d.fire(l, e, fireUpdate)
		}
	}
	for _, l := range listeners {
		for _, e := range ev.Removed {
			d.fire(l, e, fireRemove)
		}
	}
	for _, l := range listeners {
		d.safeCall(func() { l.Refresh(ev.FrameTime) })
	}
}

type fireKind int

const (
	fireAdd fireKind = iota
	fireUpdate
	fireRemove
)

func (d *Dispatcher) fire(l interfaces.Listener, e profile.Entity, kind fireKind) {
	d.safeCall(func() {
		switch e.Kind().Family {
		case profile.Cursor:
			switch kind {
			case fireAdd:
				l.AddTuioCursor(e)
			case fireUpdate:
				l.UpdateTuioCursor(e)
			case fireRemove:
				l.RemoveTuioCursor(e)
			}
		case profile.Object:
			switch kind {
			case fireAdd:
				l.AddTuioObject(e)
			case fireUpdate:
				l.UpdateTuioObject(e)
			case fireRemove:
				l.RemoveTuioObject(e)
			}
		case profile.Blob:
			switch kind {
			case fireAdd:
				l.AddTuioBlob(e)
			case fireUpdate:
				l.UpdateTuioBlob(e)
			case fireRemove:
				l.RemoveTuioBlob(e)
			}
		}
	})
}

// safeCall runs fn, converting a panic into a ListenerError observation
// instead of letting it propagate into the reconciler's owning goroutine.
func (d *Dispatcher) safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if d.observer != nil {
				d.observer.ObserveListenerError(fmt.Errorf("tuio: listener panic: %v", r))
			}
		}
	}()
	fn()
}
