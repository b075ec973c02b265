package tuio

import (
	"fmt"
	"net"
	"sync"

	"github.com/halvarsson/go-tuio/internal/constants"
	"github.com/halvarsson/go-tuio/internal/osc"
	"github.com/halvarsson/go-tuio/internal/profile"
	"github.com/rs/xid"
)

// SenderMode selects the sender's policy for which entities get a `set`
// message each frame, per spec.md §4.6. FullState is the simplest
// correct policy and is what NewSender uses when SenderConfig.Mode is
// empty; ChangedOnly is accepted for callers with their own dirty-tracking
// but this package's Sender always sends full state (see SPEC_FULL.md §4.6).
type SenderMode string

const (
	SenderModeFullState   SenderMode = "full_state_every_frame"
	SenderModeChangedOnly SenderMode = "changed_only"
)

// SenderConfig configures a Sender for one profile variant. A TUIO
// source only ever emits one variant per OSC address, so a Sender is
// scoped to a single Kind; a tracker emitting multiple variants runs one
// Sender per Kind.
type SenderConfig struct {
	// PeerAddress is the UDP address to send frames to.
	PeerAddress string

	// Kind is the profile variant this Sender emits.
	Kind Kind

	// Source identifies this tracker in the optional `source` message.
	// Defaults to a freshly generated xid if empty.
	Source string

	// Mode is accepted for forward compatibility with a future
	// dirty-tracking Sender; SendFrame always emits full state today.
	Mode SenderMode
}

// Sender maintains a local entity table for one profile variant and
// emits complete TUIO frames (source, alive, set-per-entity, fseq) over
// UDP on each call to SendFrame.
//
// Grounded on the teacher's Device lifecycle (a long-lived object owning
// a socket/connection, opened once and torn down by Close) and on
// original_source/pythontuio/tuio_profiles.py's per-variant
// get_message methods for frame construction order.
type Sender struct {
	conn   *net.UDPConn
	kind   Kind
	source string
	mode   SenderMode

	mu       sync.Mutex
	order    []uint32
	entities map[uint32]Entity
	frameSeq int64
}

// NewSender dials config.PeerAddress and returns a ready-to-use Sender
// for config.Kind.
func NewSender(config SenderConfig) (*Sender, error) {
	if config.PeerAddress == "" {
		return nil, fmt.Errorf("tuio: SenderConfig.PeerAddress is required")
	}
	addr, err := net.ResolveUDPAddr("udp", config.PeerAddress)
	if err != nil {
		return nil, fmt.Errorf("tuio: resolve peer address: %w", err)
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("tuio: dial peer: %w", err)
	}

	source := config.Source
	if source == "" {
		source = xid.New().String()
	}
	mode := config.Mode
	if mode == "" {
		mode = SenderModeFullState
	}

	return &Sender{
		conn:     conn,
		kind:     config.Kind,
		source:   source,
		mode:     mode,
		entities: make(map[uint32]Entity),
	}, nil
}

// Track adds (or returns the existing) live entity for sessionID,
// zero-valued on first call. The caller mutates the returned Entity's
// exported fields directly before the next SendFrame.
func (s *Sender) Track(sessionID uint32) Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entities[sessionID]; ok {
		return e
	}
	e := profile.NewEntity(s.kind, sessionID)
	s.entities[sessionID] = e
	s.order = append(s.order, sessionID)
	return e
}

// Untrack removes sessionID from the live set; it will be reported as
// removed (absent from the next `alive` message) on the next SendFrame.
func (s *Sender) Untrack(sessionID uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entities, sessionID)
	for i, id := range s.order {
		if id == sessionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SendFrame emits one complete TUIO frame for the Sender's variant:
// source, alive, one set per live entity, and fseq, wrapping the frame
// sequence number at 2^31 per spec.md §4.6.
func (s *Sender) SendFrame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	address := s.kind.Address()
	var messages [][]byte

	sourceMsg, err := osc.EncodeMessage(address, []interface{}{"source", s.source})
	if err != nil {
		return WrapError("sender.encode-source", CodeEncodeFailed, err)
	}
	messages = append(messages, sourceMsg)

	aliveArgs := make([]interface{}, 0, len(s.order)+1)
	aliveArgs = append(aliveArgs, "alive")
	for _, id := range s.order {
		aliveArgs = append(aliveArgs, int32(id))
	}
	aliveMsg, err := osc.EncodeMessage(address, aliveArgs)
	if err != nil {
		return WrapError("sender.encode-alive", CodeEncodeFailed, err)
	}
	messages = append(messages, aliveMsg)

	for _, id := range s.order {
		e := s.entities[id]
		setArgs := make([]interface{}, 0, len(e.SetArgs())+3)
		setArgs = append(setArgs, "set", int32(id))
		if cp, ok := e.(profile.ClassIDProvider); ok {
			setArgs = append(setArgs, cp.ClassIDArg())
		}
		for _, v := range e.SetArgs() {
			setArgs = append(setArgs, v)
		}
		setMsg, err := osc.EncodeMessage(address, setArgs)
		if err != nil {
			return WrapError("sender.encode-set", CodeEncodeFailed, err)
		}
		messages = append(messages, setMsg)
	}

	fseqMsg, err := osc.EncodeMessage(address, []interface{}{"fseq", int32(s.frameSeq)})
	if err != nil {
		return WrapError("sender.encode-fseq", CodeEncodeFailed, err)
	}
	messages = append(messages, fseqMsg)

	s.frameSeq = (s.frameSeq + 1) % constants.FseqWrap

	bundle := osc.EncodeBundle(0, messages)
	if _, err := s.conn.Write(bundle); err != nil {
		return WrapError("sender.write", CodeEncodeFailed, err)
	}
	return nil
}

// Close releases the Sender's UDP socket.
func (s *Sender) Close() error {
	return s.conn.Close()
}
