// Package queue implements the serialization point between the UDP
// transport and the frame reconciler (SPEC_FULL.md §5: "one logical
// thread owns the reconciler state; the transport layer may read
// datagrams on another thread but must hand them to the reconciler
// through a bounded queue or equivalent serialization point").
//
// FrameRunner is adapted from the teacher's per-queue Runner: a single
// goroutine pinned to draining one input channel to completion before
// touching the next item, with the same Config/NewRunner/Start/Close
// lifecycle shape. Everything that existed only to talk to a kernel
// block device — io_uring submission, per-tag state machines, mmap'd
// descriptor arrays — has no analogue in a UDP/OSC pipeline and does not
// survive the rewrite (see DESIGN.md's dropped-dependency entry for
// internal/uring and golang.org/x/sys).
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/halvarsson/go-tuio/internal/constants"
	"github.com/halvarsson/go-tuio/internal/dispatch"
	"github.com/halvarsson/go-tuio/internal/interfaces"
	"github.com/halvarsson/go-tuio/internal/osc"
	"github.com/halvarsson/go-tuio/internal/reconcile"
	"github.com/halvarsson/go-tuio/internal/router"
)

// Datagram is one received UDP payload, handed off by the transport.
type Datagram struct {
	Payload []byte
}

// Config configures a FrameRunner.
type Config struct {
	QueueDepth     int // bounded channel depth; 0 uses constants.DefaultFrameQueueDepth
	Router         *router.Router
	Reconciler     *reconcile.Reconciler
	Dispatcher     *dispatch.Dispatcher
	Logger         interfaces.Logger
	Observer       interfaces.Observer
	StrictDecoding bool // not read by FrameRunner: a decode error always fails the whole datagram, and a malformed set always fails only its own message
}

// FrameRunner drains decoded datagrams on a single goroutine, routing
// each message through the reconciler and dispatching completed frames.
// Decode, diff, set application, and listener dispatch run to completion
// for one datagram before the next is processed, per spec.md §5's
// no-suspension-inside-a-bundle rule.
type FrameRunner struct {
	in         chan Datagram
	router     *router.Router
	reconciler *reconcile.Reconciler
	dispatcher *dispatch.Dispatcher
	logger     interfaces.Logger
	observer   interfaces.Observer

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner builds a FrameRunner. The returned runner does not start
// processing until Start is called.
func NewRunner(ctx context.Context, config Config) (*FrameRunner, error) {
	if config.Router == nil || config.Reconciler == nil || config.Dispatcher == nil {
		return nil, fmt.Errorf("queue: Router, Reconciler, and Dispatcher are required")
	}

	depth := config.QueueDepth
	if depth <= 0 {
		depth = constants.DefaultFrameQueueDepth
	}

	ctx, cancel := context.WithCancel(ctx)
	return &FrameRunner{
		in:         make(chan Datagram, depth),
		router:     config.Router,
		reconciler: config.Reconciler,
		dispatcher: config.Dispatcher,
		logger:     config.Logger,
		observer:   config.Observer,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}, nil
}

// Start launches the processing goroutine.
func (r *FrameRunner) Start() error {
	if r.logger != nil {
		r.logger.Debugf("frame runner starting")
	}
	go r.loop()
	return nil
}

// Enqueue hands a raw datagram to the runner. Returns an error if the
// runner has been stopped or the queue is full (the caller's transport
// collaborator is responsible for backpressure or drop policy on a full
// queue).
func (r *FrameRunner) Enqueue(payload []byte) error {
	select {
	case <-r.ctx.Done():
		return fmt.Errorf("queue: runner stopped")
	default:
	}
	select {
	case r.in <- Datagram{Payload: payload}:
		return nil
	case <-r.ctx.Done():
		return fmt.Errorf("queue: runner stopped")
	default:
		return fmt.Errorf("queue: frame queue full")
	}
}

// Stop signals the processing goroutine to exit after its current
// datagram. It does not wait for the goroutine to finish; use Close for
// that.
func (r *FrameRunner) Stop() error {
	r.cancel()
	return nil
}

// Close stops the runner and waits up to constants.CloseDrainTimeout for
// the goroutine to exit. Datagrams still queued at shutdown are
// discarded; no drain-on-close semantic is promised, per spec.md §5.
func (r *FrameRunner) Close() error {
	r.cancel()
	select {
	case <-r.done:
		return nil
	case <-time.After(constants.CloseDrainTimeout):
		return fmt.Errorf("queue: runner did not stop within %s", constants.CloseDrainTimeout)
	}
}

func (r *FrameRunner) loop() {
	defer close(r.done)
	if r.logger != nil {
		r.logger.Debugf("frame runner loop started")
	}
	for {
		select {
		case <-r.ctx.Done():
			if r.logger != nil {
				r.logger.Debugf("frame runner loop stopping")
			}
			return
		case d := <-r.in:
			r.processDatagram(d)
		}
	}
}

// processDatagram decodes one datagram into OSC messages and feeds each
// one through the router, reconciler, and dispatcher in order. A decode
// failure is a MalformedPacket condition: it fails the whole datagram and
// is reported to the observer, but never stops the loop.
func (r *FrameRunner) processDatagram(d Datagram) {
	msgs, err := osc.Decode(d.Payload)
	if err != nil {
		if r.observer != nil {
			r.observer.ObserveDecodeError(err)
		}
		if r.logger != nil {
			r.logger.Printf("frame runner: malformed packet: %v", err)
		}
		return
	}

	for _, msg := range msgs {
		kind, ok := r.router.Route(msg.Address)
		if !ok {
			// UnknownAddress: forwarded to the default no-op handler,
			// per spec.md §7.
			continue
		}

		// handleSet already reports malformed-set conditions to the
		// observer itself (it has the richer error instance); reporting
		// again here would double-count tuio_set_errors_total.
		ev, err := r.reconciler.Handle(kind, msg.Args, msg.Timetag)
		if err != nil {
			continue
		}
		if ev != nil {
			if r.observer != nil {
				r.observer.ObserveFrame(ev.Variant, len(ev.Added), len(ev.Updated), len(ev.Removed))
				r.observer.ObserveLiveEntities(ev.Variant, r.reconciler.LiveCount(ev.Variant))
			}
			r.dispatcher.Dispatch(ev)
		}
	}
}
