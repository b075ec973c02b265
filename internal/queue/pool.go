package queue

import "sync"

// BufferPool provides pooled byte slices to avoid a heap allocation per
// received datagram. Uses size-bucketed pools matching the sizes a UDP
// TUIO transport actually sees: a bare single-cursor message, a
// path-MTU-sized datagram, a multi-entity bundle, and the protocol's
// declared maximum (internal/constants.DefaultMaxDatagramSize).
//
// Uses *[]byte pattern to avoid sync.Pool interface allocation overhead.

// Buffer size thresholds.
const (
	size512b = 512
	size1500 = 1500
	size8k   = 8 * 1024
	size64k  = 64 * 1024
)

// globalPool is the shared buffer pool for all transports.
var globalPool = struct {
	pool512b sync.Pool
	pool1500 sync.Pool
	pool8k   sync.Pool
	pool64k  sync.Pool
}{
	pool512b: sync.Pool{New: func() any { b := make([]byte, size512b); return &b }},
	pool1500: sync.Pool{New: func() any { b := make([]byte, size1500); return &b }},
	pool8k:   sync.Pool{New: func() any { b := make([]byte, size8k); return &b }},
	pool64k:  sync.Pool{New: func() any { b := make([]byte, size64k); return &b }},
}

// GetBuffer returns a pooled buffer of at least the requested size.
// Caller must call PutBuffer when done.
func GetBuffer(size uint32) []byte {
	switch {
	case size <= size512b:
		return (*globalPool.pool512b.Get().(*[]byte))[:size]
	case size <= size1500:
		return (*globalPool.pool1500.Get().(*[]byte))[:size]
	case size <= size8k:
		return (*globalPool.pool8k.Get().(*[]byte))[:size]
	case size > size64k:
		return make([]byte, size)
	default:
		return (*globalPool.pool64k.Get().(*[]byte))[:size]
	}
}

// PutBuffer returns a buffer to the pool. The buffer's capacity
// determines which pool it goes to.
func PutBuffer(buf []byte) {
	c := cap(buf)
	buf = buf[:c]
	switch c {
	case size512b:
		globalPool.pool512b.Put(&buf)
	case size1500:
		globalPool.pool1500.Put(&buf)
	case size8k:
		globalPool.pool8k.Put(&buf)
	case size64k:
		globalPool.pool64k.Put(&buf)
		// Buffers with non-standard capacity are not returned to pool.
	}
}
