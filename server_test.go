package tuio

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testListener struct {
	BaseListener
	added chan Entity
}

func (l *testListener) AddTuioCursor(e Entity) {
	select {
	case l.added <- e:
	default:
	}
}

func TestServerListenAndServeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListenAddress = "127.0.0.1:0"

	srv, err := NewServer(cfg, nil)
	require.NoError(t, err)
	defer srv.Close()

	l := &testListener{added: make(chan Entity, 1)}
	srv.Register(l)
	require.NoError(t, srv.ListenAndServe())

	sender, err := NewSender(SenderConfig{
		PeerAddress: srv.LocalAddr().String(),
		Kind:        KindCursor2D,
	})
	require.NoError(t, err)
	defer sender.Close()

	c := sender.Track(1)
	c.(*Cursor2D).Position = [2]float32{0.25, 0.75}
	require.NoError(t, sender.SendFrame())

	select {
	case e := <-l.added:
		c := e.(*Cursor2D)
		require.Equal(t, uint32(1), c.SessionID())
		require.Equal(t, [2]float32{0.25, 0.75}, c.Position)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the server to dispatch the sent cursor")
	}
}

func TestServerDoubleListenAndServeErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListenAddress = "127.0.0.1:0"
	srv, err := NewServer(cfg, nil)
	require.NoError(t, err)
	defer srv.Close()

	require.NoError(t, srv.ListenAndServe())
	require.Error(t, srv.ListenAndServe())
}

func TestServerCloseStopsReadLoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListenAddress = "127.0.0.1:0"
	srv, err := NewServer(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, srv.ListenAndServe())

	addr := srv.LocalAddr().(*net.UDPAddr)
	require.NoError(t, srv.Close())

	// a datagram sent after Close should simply be refused by the closed
	// socket, not delivered anywhere.
	conn, err := net.DialUDP("udp", nil, addr)
	require.NoError(t, err)
	defer conn.Close()
	_, _ = conn.Write([]byte("ignored"))
}
