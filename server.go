// Package tuio implements a TUIO 1.1 protocol library: decoding OSC
// bundles off a UDP socket, reconciling them into per-variant entity
// tables, and dispatching add/update/remove/refresh callbacks to
// registered listeners, plus a Sender for the transmit side.
package tuio

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/halvarsson/go-tuio/internal/constants"
	"github.com/halvarsson/go-tuio/internal/dispatch"
	"github.com/halvarsson/go-tuio/internal/interfaces"
	"github.com/halvarsson/go-tuio/internal/queue"
	"github.com/halvarsson/go-tuio/internal/reconcile"
	"github.com/halvarsson/go-tuio/internal/router"
)

// Config configures a Server.
type Config struct {
	// ListenAddress is the UDP address to bind, e.g. "0.0.0.0:3333".
	ListenAddress string

	// FrameQueueDepth bounds the channel between the UDP read loop and
	// the frame runner. 0 uses constants.DefaultFrameQueueDepth.
	FrameQueueDepth int

	// MaxDatagramSize bounds the largest UDP datagram read into a pooled
	// buffer. 0 uses constants.DefaultMaxDatagramSize.
	MaxDatagramSize int
}

// DefaultConfig returns a Config with the spec's documented defaults
// (listen_address 0.0.0.0:3333, per SPEC_FULL.md §6).
func DefaultConfig() Config {
	return Config{
		ListenAddress:   constants.DefaultListenAddress,
		FrameQueueDepth: constants.DefaultFrameQueueDepth,
		MaxDatagramSize: constants.DefaultMaxDatagramSize,
	}
}

// Options carries optional collaborators for a Server.
type Options struct {
	// Logger receives debug/info messages. nil disables logging.
	Logger interfaces.Logger

	// Observer receives frame/error observations. nil uses a
	// MetricsObserver recording into the Server's built-in Metrics.
	Observer Observer
}

// State is the lifecycle state of a Server.
type State string

const (
	StateCreated State = "created"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// Server listens on a UDP socket, decodes TUIO OSC bundles, reconciles
// them into per-variant entity tables, and dispatches callbacks to
// registered listeners at each frame boundary.
//
// Adapted from the teacher's Device/CreateAndServe lifecycle: device
// control-plane handshake and per-queue io_uring runners become a single
// UDP socket and a single FrameRunner, since TUIO has no multi-queue
// concept.
type Server struct {
	conn *net.UDPConn

	router     *router.Router
	reconciler *reconcile.Reconciler
	dispatcher *dispatch.Dispatcher
	runner     *queue.FrameRunner

	config   Config
	logger   interfaces.Logger
	observer Observer
	metrics  *Metrics

	mu      sync.Mutex
	started bool
	stopped bool

	readDone chan struct{}
}

// NewServer constructs a Server bound to config.ListenAddress but does
// not start reading datagrams yet; call ListenAndServe for that.
func NewServer(config Config, options *Options) (*Server, error) {
	if config.ListenAddress == "" {
		config.ListenAddress = constants.DefaultListenAddress
	}
	if options == nil {
		options = &Options{}
	}

	metrics := NewMetrics()
	var observer Observer = NoOpObserver{}
	if options.Observer != nil {
		observer = options.Observer
	} else {
		observer = NewMetricsObserver(metrics)
	}

	addr, err := net.ResolveUDPAddr("udp", config.ListenAddress)
	if err != nil {
		return nil, fmt.Errorf("tuio: resolve listen address: %w", err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("tuio: listen udp: %w", err)
	}

	rt := router.New()
	rc := reconcile.New(observer)
	d := dispatch.New(observer)

	runner, err := queue.NewRunner(context.Background(), queue.Config{
		QueueDepth: config.FrameQueueDepth,
		Router:     rt,
		Reconciler: rc,
		Dispatcher: d,
		Logger:     options.Logger,
		Observer:   observer,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("tuio: create frame runner: %w", err)
	}

	return &Server{
		conn:       conn,
		router:     rt,
		reconciler: rc,
		dispatcher: d,
		runner:     runner,
		config:     config,
		logger:     options.Logger,
		observer:   observer,
		metrics:    metrics,
		readDone:   make(chan struct{}),
	}, nil
}

// ListenAndServe starts the frame runner and the UDP read loop. It
// returns immediately; the read loop runs on its own goroutine until
// Close is called.
func (s *Server) ListenAndServe() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("tuio: server already started")
	}
	s.started = true
	s.mu.Unlock()

	if err := s.runner.Start(); err != nil {
		return fmt.Errorf("tuio: start frame runner: %w", err)
	}
	if s.logger != nil {
		s.logger.Printf("tuio: listening on %s", s.conn.LocalAddr())
	}

	go s.readLoop()
	return nil
}

func (s *Server) readLoop() {
	defer close(s.readDone)

	maxSize := s.config.MaxDatagramSize
	if maxSize <= 0 {
		maxSize = constants.DefaultMaxDatagramSize
	}

	for {
		buf := queue.GetBuffer(uint32(maxSize))
		n, _, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			queue.PutBuffer(buf)
			if s.logger != nil {
				s.logger.Debugf("tuio: read loop exiting: %v", err)
			}
			return
		}

		datagram := make([]byte, n)
		copy(datagram, buf[:n])
		queue.PutBuffer(buf)

		if err := s.runner.Enqueue(datagram); err != nil && s.logger != nil {
			s.logger.Printf("tuio: dropped datagram: %v", err)
		}
	}
}

// Register adds a listener to receive dispatched TUIO events.
func (s *Server) Register(l Listener) {
	s.dispatcher.Register(l)
}

// Unregister removes a previously registered listener.
func (s *Server) Unregister(l Listener) {
	s.dispatcher.Unregister(l)
}

// Metrics returns the Server's built-in metrics instance (populated only
// if no custom Observer was supplied in Options).
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// State returns the Server's current lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.stopped:
		return StateStopped
	case s.started:
		return StateRunning
	default:
		return StateCreated
	}
}

// LocalAddr returns the UDP address the Server is bound to.
func (s *Server) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// Close stops the read loop and the frame runner, releasing the UDP
// socket. Datagrams already queued are discarded; no drain-on-close
// semantic is promised, per spec.md §5.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	closeErr := s.conn.Close()
	<-s.readDone
	runnerErr := s.runner.Close()
	if closeErr != nil {
		return closeErr
	}
	return runnerErr
}

var _ interfaces.Listener = BaseListener{}
