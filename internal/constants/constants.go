// Package constants holds the default configuration values shared across
// the tuio module.
package constants

import "time"

// Default configuration constants
const (
	// DefaultListenAddress is the default UDP address a Server binds to.
	DefaultListenAddress = "0.0.0.0:3333"

	// DefaultFrameQueueDepth is the default depth of the bounded channel
	// that hands decoded datagrams from the transport to the FrameRunner.
	DefaultFrameQueueDepth = 64

	// DefaultMaxDatagramSize is the largest UDP datagram the transport will
	// read into a pooled buffer before handing it to the decoder.
	DefaultMaxDatagramSize = 64 * 1024

	// FseqWrap is the modulus TUIO frame sequence numbers wrap at (2^31),
	// per the TUIO 1.1 framing rule in spec.md §4.6.
	FseqWrap = 1 << 31

	// UnsequencedFseq is the sentinel frame sequence number meaning
	// "unsequenced", per spec.md §4.4.
	UnsequencedFseq = -1
)

// Shutdown timing.
//
// Unlike a ublk device, a tuio Server has no kernel handshake to wait on;
// Close only needs to stop the read loop and the FrameRunner. Datagrams
// still queued at that point are discarded, not drained.
const (
	// CloseDrainTimeout bounds how long Close waits for the FrameRunner's
	// goroutine to exit after shutdown was requested.
	CloseDrainTimeout = 2 * time.Second
)
