// Package reconcile implements the frame reconciliation engine (C4 in
// SPEC_FULL.md): the per-variant entity tables and the alive/set/fseq
// bookkeeping that turns a stream of decoded OSC messages into discrete,
// frame-scoped add/update/remove batches.
//
// The diff algorithm is grounded on original_source/pythontuio/dispatcher.py's
// _sort_matchs (carry matched session ids forward, add the rest, remove
// anything left over in the old set); the state held between messages
// mirrors the small per-unit state machine shape of the teacher's
// internal/queue/runner.go, cut down from ublk's multi-stage tag lifecycle
// to the three pending buffers a TUIO frame actually needs.
package reconcile

import (
	"github.com/halvarsson/go-tuio/internal/interfaces"
	"github.com/halvarsson/go-tuio/internal/profile"
)

// FrameEvent is the result of a fseq message closing out a frame: the
// entities added, updated, and removed since the previous frame, in fixed
// dispatch order (add, update, remove), plus the frame's sequence number
// and frame time (the raw OSC bundle timetag converted to float64).
//
// Per SPEC_FULL.md §11, pending buffers are shared across all nine
// profile variants; a FrameEvent fired by one variant's fseq message may
// carry entities belonging to other variants if their alive/set messages
// arrived in the same bundle without their own fseq.
type FrameEvent struct {
	Variant   profile.Kind
	FrameSeq  int32
	FrameTime float64
	Added     []profile.Entity
	Updated   []profile.Entity
	Removed   []profile.Entity
}

// Reconciler holds the live entity tables for all nine profile variants
// and the pending add/update/remove buffers accumulated since the last
// fseq.
type Reconciler struct {
	tables map[profile.Kind]*table

	pendingAdd    []profile.Entity
	pendingUpdate []profile.Entity
	pendingRemove []profile.Entity

	source   string
	observer interfaces.Observer
}

// New builds a Reconciler with empty tables for all nine variants.
// observer may be nil, in which case malformed-set conditions are
// discarded silently.
func New(observer interfaces.Observer) *Reconciler {
	r := &Reconciler{
		tables:   make(map[profile.Kind]*table, len(profile.AllKinds)),
		observer: observer,
	}
	for _, k := range profile.AllKinds {
		r.tables[k] = newTable()
	}
	return r
}

func (r *Reconciler) observeSetError(err error) {
	if r.observer != nil {
		r.observer.ObserveSetError(err)
	}
}

// LiveCount returns the number of entities currently alive for kind.
func (r *Reconciler) LiveCount(kind profile.Kind) int {
	return len(r.tables[kind].order)
}

// Handle processes a single decoded TUIO message already routed to kind.
// It returns a non-nil FrameEvent only when the message was a fseq,
// closing out the current frame.
func (r *Reconciler) Handle(kind profile.Kind, args []interface{}, timetag int64) (*FrameEvent, error) {
	if len(args) == 0 {
		return nil, errMissingType
	}
	ttype, ok := args[0].(string)
	if !ok {
		return nil, errMissingType
	}

	switch ttype {
	case "source":
		r.handleSource(args[1:])
		return nil, nil
	case "alive":
		r.handleAlive(kind, args[1:])
		return nil, nil
	case "set":
		return nil, r.handleSet(kind, args[1:])
	case "fseq":
		return r.handleFseq(kind, args[1:], timetag), nil
	default:
		// Unrecognized first argument: ignore rather than fail the whole
		// bundle, matching the tolerant-by-default posture of spec.md §7.
		return nil, nil
	}
}

func (r *Reconciler) handleSource(args []interface{}) {
	if len(args) == 0 {
		return
	}
	if s, ok := args[0].(string); ok {
		r.source = s
	}
}

// handleAlive replaces the live session id set for kind with ids, diffing
// against the previous set: carried-forward ids go to pendingUpdate, new
// ids go to pendingAdd and get a freshly zeroed entity, and ids present in
// the old table but absent from ids go to pendingRemove. Duplicate ids in
// the same alive message collapse to a single entry, per spec.md's
// edge-case note that duplicate session ids are implementation-defined.
func (r *Reconciler) handleAlive(kind profile.Kind, args []interface{}) {
	tbl := r.tables[kind]

	newOrder := make([]uint32, 0, len(args))
	newEntities := make(map[uint32]profile.Entity, len(args))
	seen := make(map[uint32]bool, len(args))

	for _, a := range args {
		id, ok := toSessionID(a)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true

		if e, existed := tbl.entities[id]; existed {
			newEntities[id] = e
			newOrder = append(newOrder, id)
			r.pendingUpdate = append(r.pendingUpdate, e)
		} else {
			e := profile.NewEntity(kind, id)
			newEntities[id] = e
			newOrder = append(newOrder, id)
			r.pendingAdd = append(r.pendingAdd, e)
		}
	}

	for _, id := range tbl.order {
		if !seen[id] {
			r.pendingRemove = append(r.pendingRemove, tbl.entities[id])
		}
	}

	r.tables[kind] = &table{order: newOrder, entities: newEntities}
}

// handleSet applies a set message's arguments to the live entity named by
// its session id. A set for an unknown session id (one not named by the
// most recent alive) is silently dropped, per spec.md §4.4's
// set-before-alive edge case. A wrong argument count is reported to the
// observer and returned to the caller as a non-fatal per-message error.
func (r *Reconciler) handleSet(kind profile.Kind, args []interface{}) error {
	if len(args) < 1 {
		return errMalformedSet
	}
	id, ok := toSessionID(args[0])
	if !ok {
		return errMalformedSet
	}

	tbl := r.tables[kind]
	e, existed := tbl.entities[id]
	if !existed {
		return nil
	}

	vals := make([]float32, 0, len(args)-1)
	for _, a := range args[1:] {
		f, ok := toFloat32(a)
		if !ok {
			r.observeSetError(errMalformedSet)
			return errMalformedSet
		}
		vals = append(vals, f)
	}

	if err := e.Apply(vals); err != nil {
		r.observeSetError(err)
		return err
	}
	return nil
}

// handleFseq closes out the current frame: it snapshots and clears the
// three pending buffers into a FrameEvent. Every fseq produces a
// dispatch, including duplicate frame sequence numbers and frames with no
// pending changes at all (the refresh-only case), per spec.md §4.5.
func (r *Reconciler) handleFseq(kind profile.Kind, args []interface{}, timetag int64) *FrameEvent {
	var seq int32 = -1
	if len(args) > 0 {
		if s, ok := args[0].(int32); ok {
			seq = s
		}
	}

	ev := &FrameEvent{
		Variant:   kind,
		FrameSeq:  seq,
		FrameTime: float64(timetag),
		Added:     r.pendingAdd,
		Updated:   r.pendingUpdate,
		Removed:   r.pendingRemove,
	}
	r.pendingAdd = nil
	r.pendingUpdate = nil
	r.pendingRemove = nil
	return ev
}

func toSessionID(a interface{}) (uint32, bool) {
	i, ok := a.(int32)
	if !ok {
		return 0, false
	}
	return uint32(i), true
}

func toFloat32(a interface{}) (float32, bool) {
	switch v := a.(type) {
	case float32:
		return v, true
	case int32:
		return float32(v), true
	default:
		return 0, false
	}
}
