package queue

import (
	"context"
	"testing"
	"time"

	"github.com/halvarsson/go-tuio/internal/dispatch"
	"github.com/halvarsson/go-tuio/internal/osc"
	"github.com/halvarsson/go-tuio/internal/profile"
	"github.com/halvarsson/go-tuio/internal/reconcile"
	"github.com/halvarsson/go-tuio/internal/router"
	"github.com/stretchr/testify/require"
)

type capturingListener struct {
	added chan profile.Entity
}

func (c *capturingListener) AddTuioCursor(e profile.Entity) { c.added <- e }
func (c *capturingListener) UpdateTuioCursor(e profile.Entity) {}
func (c *capturingListener) RemoveTuioCursor(e profile.Entity) {}
func (c *capturingListener) AddTuioObject(e profile.Entity)    {}
func (c *capturingListener) UpdateTuioObject(e profile.Entity) {}
func (c *capturingListener) RemoveTuioObject(e profile.Entity) {}
func (c *capturingListener) AddTuioBlob(e profile.Entity)      {}
func (c *capturingListener) UpdateTuioBlob(e profile.Entity)   {}
func (c *capturingListener) RemoveTuioBlob(e profile.Entity)   {}
func (c *capturingListener) Refresh(frameTime float64)         {}

func buildRunner(t *testing.T) (*FrameRunner, *capturingListener) {
	t.Helper()
	l := &capturingListener{added: make(chan profile.Entity, 4)}
	d := dispatch.New(nil)
	d.Register(l)

	r, err := NewRunner(context.Background(), Config{
		Router:     router.New(),
		Reconciler: reconcile.New(nil),
		Dispatcher: d,
	})
	require.NoError(t, err)
	require.NoError(t, r.Start())
	t.Cleanup(func() { _ = r.Close() })
	return r, l
}

func buildBundle(t *testing.T) []byte {
	t.Helper()
	alive, err := osc.EncodeMessage("/tuio/2Dcur", []interface{}{"alive", int32(1)})
	require.NoError(t, err)
	set, err := osc.EncodeMessage("/tuio/2Dcur", []interface{}{
		"set", int32(1), float32(0.5), float32(0.5), float32(0), float32(0), float32(0),
	})
	require.NoError(t, err)
	fseq, err := osc.EncodeMessage("/tuio/2Dcur", []interface{}{"fseq", int32(1)})
	require.NoError(t, err)
	return osc.EncodeBundle(0, [][]byte{alive, set, fseq})
}

func TestFrameRunnerEndToEnd(t *testing.T) {
	r, l := buildRunner(t)
	require.NoError(t, r.Enqueue(buildBundle(t)))

	select {
	case e := <-l.added:
		c, ok := e.(*profile.Cursor2D)
		require.True(t, ok)
		require.Equal(t, uint32(1), c.SessionID())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatched add")
	}
}

func TestFrameRunnerRejectsAfterClose(t *testing.T) {
	r, _ := buildRunner(t)
	require.NoError(t, r.Close())
	require.Error(t, r.Enqueue(buildBundle(t)))
}

func TestFrameRunnerMalformedDatagramDoesNotStopLoop(t *testing.T) {
	r, l := buildRunner(t)
	require.NoError(t, r.Enqueue([]byte("not a valid osc packet")))
	require.NoError(t, r.Enqueue(buildBundle(t)))

	select {
	case <-l.added:
	case <-time.After(time.Second):
		t.Fatal("runner did not continue processing after a malformed datagram")
	}
}
