package feed

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-neon-defense/internal/app"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func testServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(zerolog.Nop())
	srv := httptest.NewServer(s)
	t.Cleanup(func() {
		s.Close()
		srv.Close()
	})
	return s, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func waitClients(t *testing.T, s *Server, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return s.Clients() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestServer_SendsMapOnConnect(t *testing.T) {
	s, srv := testServer(t)
	require.NoError(t, s.PublishMap(app.MapView{Seed: 42, Name: "Spiral"}))

	conn := dial(t, srv)
	env := read(t, conn)
	assert.Equal(t, TypeMap, env.Type)

	var m app.MapView
	require.NoError(t, json.Unmarshal(env.Payload, &m))
	assert.Equal(t, uint32(42), m.Seed)
	assert.Equal(t, "Spiral", m.Name)
}

func TestServer_BroadcastReachesAllClients(t *testing.T) {
	s, srv := testServer(t)
	a := dial(t, srv)
	b := dial(t, srv)
	waitClients(t, s, 2)

	require.NoError(t, s.Broadcast(Message{Type: TypeFrame, Payload: app.Snapshot{Gold: 123}}))
	for _, conn := range []*websocket.Conn{a, b} {
		env := read(t, conn)
		assert.Equal(t, TypeFrame, env.Type)
		var snap app.Snapshot
		require.NoError(t, json.Unmarshal(env.Payload, &snap))
		assert.Equal(t, 123, snap.Gold)
	}
}

func TestServer_ClientDisconnect(t *testing.T) {
	s, srv := testServer(t)
	conn := dial(t, srv)
	waitClients(t, s, 1)

	require.NoError(t, conn.Close())
	waitClients(t, s, 0)
	assert.NoError(t, s.Broadcast(Message{Type: TypeFrame}))
}

func TestServer_BroadcastDoesNotBlock(t *testing.T) {
	s, srv := testServer(t)
	dial(t, srv) // никогда не читает
	waitClients(t, s, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBuffer*20; i++ {
			_ = s.Broadcast(Message{Type: TypeFrame, Payload: strings.Repeat("x", 4096)})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}

func TestServer_BroadcastEncodeError(t *testing.T) {
	s := NewServer(zerolog.Nop())
	err := s.Broadcast(Message{Type: TypeFrame, Payload: make(chan int)})
	assert.Error(t, err)
}

func TestServer_CloseDisconnectsClients(t *testing.T) {
	s, srv := testServer(t)
	conn := dial(t, srv)
	waitClients(t, s, 1)

	s.Close()
	assert.Equal(t, 0, s.Clients())
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}
