package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(hub *Hub, userID string) *Client {
	return newClient(hub, nil, userID)
}

func drain(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case payload := <-c.send:
		var event Event
		require.NoError(t, json.Unmarshal(payload, &event))
		return event
	default:
		t.Fatal("expected a frame, send buffer is empty")
		return Event{}
	}
}

func TestBroadcastToAllReachesEveryConnection(t *testing.T) {
	hub := NewHub()
	a := testClient(hub, "user-a")
	b1 := testClient(hub, "user-b")
	b2 := testClient(hub, "user-b")
	hub.register(a)
	hub.register(b1)
	hub.register(b2)

	hub.BroadcastToAll(Event{Type: "transfer_update", Data: map[string]string{"id": "t1"}})

	for _, c := range []*Client{a, b1, b2} {
		event := drain(t, c)
		assert.Equal(t, "transfer_update", event.Type)
	}
}

func TestBroadcastToUserTargetsAllOfThatUsersConnections(t *testing.T) {
	hub := NewHub()
	a := testClient(hub, "user-a")
	b1 := testClient(hub, "user-b")
	b2 := testClient(hub, "user-b")
	hub.register(a)
	hub.register(b1)
	hub.register(b2)

	hub.BroadcastToUser("user-b", Event{Type: "notification"})

	assert.Empty(t, a.send)
	assert.Equal(t, "notification", drain(t, b1).Type)
	assert.Equal(t, "notification", drain(t, b2).Type)
}

func TestBroadcastToUserWithNoConnectionsIsANoOp(t *testing.T) {
	hub := NewHub()
	hub.BroadcastToUser("nobody", Event{Type: "notification"})
	assert.Equal(t, 0, hub.ConnectionCount("nobody"))
}

func TestBroadcastToWardOnlyReachesJoinedClients(t *testing.T) {
	hub := NewHub()
	joined := testClient(hub, "user-a")
	joined.setWardID("ward-icu")
	elsewhere := testClient(hub, "user-b")
	elsewhere.setWardID("ward-general")
	unjoined := testClient(hub, "user-c")
	hub.register(joined)
	hub.register(elsewhere)
	hub.register(unjoined)

	hub.BroadcastToWard("ward-icu", Event{Type: "transfer_request"})

	assert.Equal(t, "transfer_request", drain(t, joined).Type)
	assert.Empty(t, elsewhere.send)
	assert.Empty(t, unjoined.send)
}

func TestBroadcastToWardWithEmptyWardIsANoOp(t *testing.T) {
	hub := NewHub()
	unjoined := testClient(hub, "user-a")
	hub.register(unjoined)

	hub.BroadcastToWard("", Event{Type: "transfer_request"})

	assert.Empty(t, unjoined.send)
}

func TestUnregisterClosesSendAndDropsEmptyUserEntry(t *testing.T) {
	hub := NewHub()
	c1 := testClient(hub, "user-a")
	c2 := testClient(hub, "user-a")
	hub.register(c1)
	hub.register(c2)
	require.Equal(t, 2, hub.ConnectionCount("user-a"))

	hub.unregister(c1)
	assert.Equal(t, 1, hub.ConnectionCount("user-a"))
	_, open := <-c1.send
	assert.False(t, open)

	hub.unregister(c2)
	assert.Equal(t, 0, hub.ConnectionCount("user-a"))

	// A second unregister of the same client must not panic or double-close.
	hub.unregister(c2)
}

func TestSlowClientDropsFrameInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	c := testClient(hub, "user-a")
	hub.register(c)

	for i := 0; i < sendBufferSize+10; i++ {
		hub.BroadcastToUser("user-a", Event{Type: "notification"})
	}

	assert.Len(t, c.send, sendBufferSize)
}

func TestJoinHandshakeKeepsSessionIdentity(t *testing.T) {
	hub := NewHub()
	c := testClient(hub, "session-user")
	hub.register(c)

	c.handleMessage([]byte(`{"type":"join","userId":"claimed-other-user","wardId":"ward-icu"}`))

	assert.Equal(t, "session-user", c.userID)
	assert.Equal(t, "ward-icu", c.WardID())
	assert.Equal(t, 1, hub.ConnectionCount("session-user"))
	assert.Equal(t, 0, hub.ConnectionCount("claimed-other-user"))

	// Garbage and non-join frames leave the ward tag alone.
	c.handleMessage([]byte("not-json"))
	c.handleMessage([]byte(`{"type":"ping"}`))
	assert.Equal(t, "ward-icu", c.WardID())
}
