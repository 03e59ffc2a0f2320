package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, err := websocket.Dial(url, "", srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestHubBroadcastsCannedReply(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	ws := dialHub(t, srv)

	require.NoError(t, websocket.Message.Send(ws, "hello bot"))

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Message
	require.NoError(t, websocket.JSON.Receive(ws, &got))

	assert.Equal(t, "Bot", got.Sender)
	assert.Equal(t, cannedReply, got.Text)
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	first := dialHub(t, srv)
	second := dialHub(t, srv)

	// Registration happens on the server goroutine after the
	// handshake; wait for both before triggering a broadcast.
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.conns) == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, websocket.Message.Send(first, "anyone there?"))

	for _, ws := range []*websocket.Conn{first, second} {
		ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		var got Message
		require.NoError(t, websocket.JSON.Receive(ws, &got))
		assert.Equal(t, cannedReply, got.Text)
	}
}

func TestHubPrunesDisconnectedClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	ws := dialHub(t, srv)
	ws.Close()

	assert.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.conns) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
