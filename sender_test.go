package tuio

import (
	"net"
	"testing"
	"time"

	"github.com/halvarsson/go-tuio/internal/osc"
	"github.com/stretchr/testify/require"
)

func TestSenderEmitsSourceAliveSetFseq(t *testing.T) {
	lc, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	defer lc.Close()

	s, err := NewSender(SenderConfig{PeerAddress: lc.LocalAddr().String(), Kind: KindCursor2D})
	require.NoError(t, err)
	defer s.Close()

	c := s.Track(1).(*Cursor2D)
	c.Position = [2]float32{0.1, 0.2}
	require.NoError(t, s.SendFrame())

	buf := make([]byte, 4096)
	require.NoError(t, lc.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := lc.ReadFromUDP(buf)
	require.NoError(t, err)

	msgs, err := osc.Decode(buf[:n])
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	require.Equal(t, "source", msgs[0].Args[0])
	require.Equal(t, "alive", msgs[1].Args[0])
	require.Equal(t, int32(1), msgs[1].Args[1])
	require.Equal(t, "set", msgs[2].Args[0])
	require.Equal(t, int32(1), msgs[2].Args[1])
	require.Equal(t, float32(0.1), msgs[2].Args[2])
	require.Equal(t, "fseq", msgs[3].Args[0])
	require.Equal(t, int32(0), msgs[3].Args[1])
}

func TestSenderEncodesObjectClassIDAsInt32(t *testing.T) {
	lc, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	defer lc.Close()

	s, err := NewSender(SenderConfig{PeerAddress: lc.LocalAddr().String(), Kind: KindObject2D})
	require.NoError(t, err)
	defer s.Close()

	obj := s.Track(1).(*Object2D)
	obj.ClassID = 3
	obj.Position = [2]float32{0.1, 0.2}
	require.NoError(t, s.SendFrame())

	buf := make([]byte, 4096)
	require.NoError(t, lc.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := lc.ReadFromUDP(buf)
	require.NoError(t, err)

	msgs, err := osc.Decode(buf[:n])
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	setMsg := msgs[2]
	require.Equal(t, "set", setMsg.Args[0])
	require.Equal(t, int32(1), setMsg.Args[1], "session id")
	require.IsType(t, int32(0), setMsg.Args[2], "class_id must wire-encode as OSC int32, not float32")
	require.Equal(t, int32(3), setMsg.Args[2])
	require.Equal(t, float32(0.1), setMsg.Args[3], "position follows class_id as float32")
}

func TestSenderFrameSeqIncrementsAndWraps(t *testing.T) {
	lc, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	defer lc.Close()

	s, err := NewSender(SenderConfig{PeerAddress: lc.LocalAddr().String(), Kind: KindCursor2D})
	require.NoError(t, err)
	defer s.Close()
	s.frameSeq = (1 << 31) - 1

	require.NoError(t, s.SendFrame())
	require.Equal(t, int64(0), s.frameSeq, "frame sequence must wrap at 2^31")
}

func TestSenderUntrackRemovesFromNextAlive(t *testing.T) {
	lc, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	defer lc.Close()

	s, err := NewSender(SenderConfig{PeerAddress: lc.LocalAddr().String(), Kind: KindCursor2D})
	require.NoError(t, err)
	defer s.Close()

	s.Track(1)
	s.Track(2)
	s.Untrack(1)
	require.NoError(t, s.SendFrame())

	buf := make([]byte, 4096)
	require.NoError(t, lc.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := lc.ReadFromUDP(buf)
	require.NoError(t, err)

	msgs, err := osc.Decode(buf[:n])
	require.NoError(t, err)
	aliveIDs := msgs[1].Args[1:]
	require.Len(t, aliveIDs, 1)
	require.Equal(t, int32(2), aliveIDs[0])
}
