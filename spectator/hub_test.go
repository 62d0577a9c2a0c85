package spectator

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/viper/render"
)

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(NewServer("", hub, nil).Handler)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + FramesPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastReachesViewer(t *testing.T) {
	hub := NewHub(nil)
	conn := dial(t, hub)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	f := render.NewFrame(600, 480)
	f.Begin(7, "boss", false)
	f.Draw(render.Sprite{Layer: render.LayerEntity, Kind: "boss", X: 300, Y: 50, W: 128, H: 128, Opacity: 1})
	hub.Broadcast(f)

	// The caller may reuse the frame right away
	f.Begin(8, "invade", false)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got render.Frame
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, uint64(7), got.Tick)
	assert.Equal(t, "boss", got.Phase)
	require.Len(t, got.Sprites, 1)
	assert.Equal(t, 128.0, got.Sprites[0].W)
}

func TestViewerDisconnect(t *testing.T) {
	hub := NewHub(nil)
	conn := dial(t, hub)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestBroadcastWithoutViewers(t *testing.T) {
	hub := NewHub(nil)
	assert.NotPanics(t, func() { hub.Broadcast(render.NewFrame(1, 1)) })
	assert.Zero(t, hub.Dropped())
}

func TestSlowViewerDropsFrames(t *testing.T) {
	hub := NewHub(nil)
	slow := &client{id: 1, send: make(chan []byte, 1)}
	hub.clients[slow] = struct{}{}

	f := render.NewFrame(1, 1)
	hub.Broadcast(f)
	hub.Broadcast(f)
	hub.Broadcast(f)

	assert.Len(t, slow.send, 1)
	assert.Equal(t, uint64(2), hub.Dropped())
}

func TestClosedHubRefusesViewers(t *testing.T) {
	hub := NewHub(nil)
	conn := dial(t, hub)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	hub.Close()
	assert.Zero(t, hub.Clients())

	// The viewer sees the close frame
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
