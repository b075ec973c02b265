// Package interfaces provides internal interface definitions for go-tuio.
// These are separate from the public interfaces in the root package to
// avoid circular imports between it and internal/dispatch and
// internal/reconcile, exactly the reason the teacher's own package
// comment gives for this package existing.
package interfaces

import "github.com/halvarsson/go-tuio/internal/profile"

// Listener is the internal mirror of the public tuio.Listener capability
// set (C5 in SPEC_FULL.md): ten operations, fired in a fixed order at
// frame boundaries.
type Listener interface {
	AddTuioCursor(e profile.Entity)
	UpdateTuioCursor(e profile.Entity)
	RemoveTuioCursor(e profile.Entity)

	AddTuioObject(e profile.Entity)
	UpdateTuioObject(e profile.Entity)
	RemoveTuioObject(e profile.Entity)

	AddTuioBlob(e profile.Entity)
	UpdateTuioBlob(e profile.Entity)
	RemoveTuioBlob(e profile.Entity)

	Refresh(frameTime float64)
}

// Logger interface for optional structured logging.
type Logger interface {
	Printf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Observer interface for metrics collection.
// Implementations must be thread-safe: methods are called from the
// reconciler's single processing goroutine, not necessarily the caller's.
type Observer interface {
	ObserveFrame(k profile.Kind, added, updated, removed int)
	ObserveLiveEntities(k profile.Kind, count int)
	ObserveDecodeError(err error)
	ObserveSetError(err error)
	ObserveListenerError(err error)
}
