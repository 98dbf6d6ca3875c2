package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func serveManager(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("WebSocket upgrade error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	return manager, serveManager(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.SetWriteDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// expectNoMessage asserts that nothing arrives within the grace period.
// The read deadline poisons the connection, so this must be the last
// operation on it.
func expectNoMessage(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "expected no message")
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "anomalies_critical"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "anomalies_critical", msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount("anomalies_critical") == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	writeJSON(t, conn1, ClientMessage{Action: "subscribe", Channel: ChannelAnomalies})
	writeJSON(t, conn2, ClientMessage{Action: "subscribe", Channel: ChannelAnomalies})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(ChannelAnomalies) == 2
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": MessageTypeAnomaly, "event_id": "evt-1"})
	manager.Broadcast(ChannelAnomalies, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, "evt-1", msg1["event_id"])
	assert.Equal(t, "evt-1", msg2["event_id"])
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	writeJSON(t, conn1, ClientMessage{Action: "subscribe", Channel: "user_octocat"})
	readJSON(t, conn1)
	writeJSON(t, conn2, ClientMessage{Action: "subscribe", Channel: "user_hubot"})
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount("user_octocat") == 1 && manager.subscriberCount("user_hubot") == 1
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": MessageTypeAnomaly, "user_login": "octocat"})
	manager.Broadcast("user_octocat", payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "octocat", msg["user_login"])

	expectNoMessage(t, conn2)
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChannelStats})
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: ChannelStats})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(ChannelStats) == 0
	}, time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": MessageTypeStats})
	manager.Broadcast(ChannelStats, payload)

	expectNoMessage(t, conn)
}

func TestConnectionManager_CatchupNormal(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]any{"type": MessageTypeAnomaly, "seq": float64(1)}},
		{ID: 11, Payload: map[string]any{"type": MessageTypeAnomaly, "seq": float64(2)}},
		{ID: 12, Payload: map[string]any{"type": MessageTypeAnomaly, "seq": float64(3)}},
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, 5*time.Second)
	server := serveManager(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChannelAnomalies})
	readJSON(t, conn)

	lastEventID := 9
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: ChannelAnomalies, LastEventID: &lastEventID})

	// Replayed in order, each stamped with its row id.
	for i := 0; i < 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i+1), msg["seq"])
		assert.Equal(t, float64(10+i), msg["db_event_id"])
	}

	expectNoMessage(t, conn) // no overflow for a small catchup
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]any{"type": MessageTypeAnomaly, "seq": i},
		}
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: manyEvents}, 5*time.Second)
	server := serveManager(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChannelAnomalies})
	readJSON(t, conn)

	lastEventID := 0
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: ChannelAnomalies, LastEventID: &lastEventID})

	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// A failed catchup query is logged but must not kill the connection.
	manager := NewConnectionManager(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")}, 5*time.Second)
	server := serveManager(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChannelAnomalies})
	readJSON(t, conn)

	lastEventID := 0
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: ChannelAnomalies, LastEventID: &lastEventID})

	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])

	// Still usable after validation errors.
	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_BroadcastToUnknownChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	payload, _ := json.Marshal(map[string]string{"type": MessageTypeAnomaly})
	assert.NotPanics(t, func() {
		manager.Broadcast("repo_nobody/nothing", payload)
	})
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChannelAnomalies})
	readJSON(t, conn)
	require.Equal(t, 1, manager.ActiveConnections())

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, manager.subscriberCount(ChannelAnomalies))

	payload, _ := json.Marshal(map[string]string{"type": MessageTypeAnomaly})
	assert.NotPanics(t, func() {
		manager.Broadcast(ChannelAnomalies, payload)
	})
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}
